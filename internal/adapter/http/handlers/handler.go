package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axlwolf/task-manager/internal/adapter/http/mapper"
	"github.com/axlwolf/task-manager/internal/adapter/http/middleware"
	"github.com/axlwolf/task-manager/internal/app/dialog"
	"github.com/axlwolf/task-manager/internal/app/store"
	"github.com/axlwolf/task-manager/internal/app/usecase"
	"github.com/axlwolf/task-manager/pkg/apierrors"
)

// DefaultSettleTimeout bounds how long a mutating request waits for the store.
const DefaultSettleTimeout = 5 * time.Second

// SessionStore is the part of the store driven by the HTTP layer.
type SessionStore interface {
	Snapshot() store.State
	LoadUsers()
	SelectUser(userID string)
	CreateTask(dto usecase.CreateTaskDTO)
	CompleteTask(taskID string)
	ShowAddTaskForm() *dialog.Ref
	Wait(ctx context.Context) error
}

// FeatureChecker reports whether a named feature is enabled.
type FeatureChecker interface {
	IsEnabled(name string) bool
}

func abortWithError(c *gin.Context, status int, msgKey string) {
	c.AbortWithStatusJSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}

// respondSettled waits for in-flight store work and writes the resulting state.
func respondSettled(c *gin.Context, s SessionStore, timeout time.Duration, status int) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	if err := s.Wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			abortWithError(c, http.StatusGatewayTimeout, apierrors.MsgStoreTimeout)
			return
		}
		_ = c.Error(err)
		abortWithError(c, http.StatusServiceUnavailable, apierrors.MsgStoreTimeout)
		return
	}

	c.JSON(status, mapper.ToStateResponse(s.Snapshot()))
}
