package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/axlwolf/task-manager/internal/adapter/http/mapper"
	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/internal/core/ports"
	"github.com/axlwolf/task-manager/pkg/apierrors"
)

type UserHandler struct {
	store         SessionStore
	users         ports.UserRepository
	settleTimeout time.Duration
}

func NewUserHandler(store SessionStore, users ports.UserRepository) *UserHandler {
	return &UserHandler{store: store, users: users, settleTimeout: DefaultSettleTimeout}
}

func (h *UserHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToStateResponse(h.store.Snapshot()))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToUserItems(h.store.Snapshot().Users))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, apierrors.MsgUserNotFound)
			return
		}
		zap.L().Error("failed to get user", zap.String("user_id", c.Param("id")), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, apierrors.MsgFailListUser)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) ReloadUsers(c *gin.Context) {
	h.store.LoadUsers()
	respondSettled(c, h.store, h.settleTimeout, http.StatusOK)
}

// SelectUser switches the session to the user and returns the reloaded state.
func (h *UserHandler) SelectUser(c *gin.Context) {
	h.store.SelectUser(c.Param("id"))
	respondSettled(c, h.store, h.settleTimeout, http.StatusOK)
}
