package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/axlwolf/task-manager/internal/adapter/http/handlers"
	"github.com/axlwolf/task-manager/internal/adapter/http/middleware"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Users       *handlers.UserHandler
	Tasks       *handlers.TaskHandler
	Dialogs     *handlers.DialogHandler
	Preferences *handlers.PreferencesHandler
}

// CorsConfig allows the given origins, or every origin when the list is empty or holds "*".
func CorsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept-Language"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/state", h.Users.GetState)
		api.GET("/users", h.Users.ListUsers)
		api.POST("/users/reload", h.Users.ReloadUsers)
		api.GET("/users/:id", h.Users.GetUser)
		api.POST("/users/:id/select", h.Users.SelectUser)

		api.GET("/tasks", h.Tasks.ListTasks)
		api.POST("/tasks", h.Tasks.CreateTask)
		api.GET("/tasks/:id", h.Tasks.GetTask)
		api.POST("/tasks/:id/complete", h.Tasks.CompleteTask)

		api.GET("/dialogs", h.Dialogs.ListDialogs)
		api.POST("/dialogs/add-task", h.Dialogs.OpenAddTask)
		api.POST("/dialogs/:id/submit", h.Dialogs.Submit)
		api.POST("/dialogs/:id/confirm", h.Dialogs.Confirm)
		api.POST("/dialogs/:id/cancel", h.Dialogs.Cancel)
		api.POST("/dialogs/:id/escape", h.Dialogs.Escape)
		api.POST("/dialogs/:id/backdrop", h.Dialogs.BackdropClick)

		api.GET("/preferences/theme", h.Preferences.GetTheme)
		api.PUT("/preferences/theme", h.Preferences.SetTheme)
		api.GET("/preferences/themes", h.Preferences.ListThemes)

		api.GET("/feature-flags", h.Preferences.ListFlags)
		api.POST("/feature-flags/reset", h.Preferences.ResetFlags)
		api.POST("/feature-flags/:name/toggle", h.Preferences.ToggleFlag)
	}
}
