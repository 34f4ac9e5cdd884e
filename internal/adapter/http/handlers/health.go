package handlers

import (
	"context"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axlwolf/task-manager/internal/adapter/http/middleware"
)

const (
	StatusOk      = "ok"
	StatusDown    = "down"
	healthTimeout = 2 * time.Second
)

// HealthCheck checks one backing service.
type HealthCheck func(ctx context.Context) error

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthAdvanced struct {
	AppName           string            `json:"app_name"`
	AppVersion        string            `json:"app_version"`
	CurrentSystemTime string            `json:"current_system_time"`
	Language          string            `json:"language"`
	Status            map[string]string `json:"status"`
}

type HealthHandler struct {
	appName string
	checks  map[string]HealthCheck
}

func NewHealthHandler(appName string, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{appName: appName, checks: checks}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	for _, status := range h.runChecks(c.Request.Context()) {
		if status != StatusOk {
			statusCode = http.StatusServiceUnavailable
			message = StatusDown
			break
		}
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           h.appName,
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.appName,
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status:            h.runChecks(c.Request.Context()),
	})
}

func (h *HealthHandler) runChecks(ctx context.Context) map[string]string {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	statuses := make(map[string]string, len(names))
	for _, name := range names {
		// A stalled backend must not hang the health check.
		timeoutCtx, cancel := context.WithTimeout(ctx, healthTimeout)
		err := h.checks[name](timeoutCtx)
		cancel()

		statuses[name] = StatusOk
		if err != nil {
			statuses[name] = StatusDown
		}
	}
	return statuses
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
