package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/axlwolf/task-manager/internal/adapter/http/dto"
	"github.com/axlwolf/task-manager/internal/adapter/http/mapper"
	"github.com/axlwolf/task-manager/internal/adapter/http/middleware"
	"github.com/axlwolf/task-manager/internal/adapter/http/validation"
	"github.com/axlwolf/task-manager/internal/app/dialog"
	"github.com/axlwolf/task-manager/internal/app/store"
	"github.com/axlwolf/task-manager/pkg/apierrors"
)

// FlagNewTaskDialog gates the add-task dialog.
const FlagNewTaskDialog = "new-task-dialog"

type DialogHandler struct {
	store         SessionStore
	outlet        *dialog.Outlet
	features      FeatureChecker
	settleTimeout time.Duration
}

func NewDialogHandler(store SessionStore, outlet *dialog.Outlet, features FeatureChecker) *DialogHandler {
	return &DialogHandler{store: store, outlet: outlet, features: features, settleTimeout: DefaultSettleTimeout}
}

func (h *DialogHandler) ListDialogs(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToDialogItems(h.outlet.List()))
}

func (h *DialogHandler) OpenAddTask(c *gin.Context) {
	if h.features != nil && !h.features.IsEnabled(FlagNewTaskDialog) {
		abortWithError(c, http.StatusForbidden, apierrors.MsgFeatureDisabled)
		return
	}

	ref := h.store.ShowAddTaskForm()
	if ref == nil {
		abortWithError(c, http.StatusServiceUnavailable, apierrors.MsgDialogUnavailable)
		return
	}

	shell, ok := h.outlet.Get(ref.ID())
	if !ok {
		// Opened on an anchor other than this outlet.
		abortWithError(c, http.StatusServiceUnavailable, apierrors.MsgAnchorMissing)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToDialogItem(shell))
}

func (h *DialogHandler) Submit(c *gin.Context) {
	shell, ok := h.shell(c)
	if !ok {
		return
	}

	form, ok := shell.Content().(*store.TaskForm)
	if !ok {
		abortWithError(c, http.StatusConflict, apierrors.MsgInvalidTaskPayload)
		return
	}

	var req dto.TaskFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	created, err := form.Submit(validation.ToTaskFormValues(req))
	if err != nil {
		var formErr *store.FormError
		switch {
		case errors.As(err, &formErr):
			lang := middleware.GetLang(c)
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
				apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang).WithFields(formErr.Fields))
		case errors.Is(err, store.ErrNoUserSelected):
			abortWithError(c, http.StatusConflict, apierrors.MsgNoUserSelected)
		case errors.Is(err, store.ErrFormClosed):
			abortWithError(c, http.StatusConflict, apierrors.MsgDialogClosed)
		default:
			zap.L().Error("failed to submit task form", zap.String("dialog_id", shell.ID()), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, apierrors.MsgFailCreateTask)
		}
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.settleTimeout)
	defer cancel()
	if err := h.store.Wait(ctx); err != nil {
		abortWithError(c, http.StatusGatewayTimeout, apierrors.MsgStoreTimeout)
		return
	}

	c.JSON(http.StatusCreated, dto.DialogSubmitResponse{
		ID: shell.ID(),
		Task: dto.TaskFormItem{
			Title:       created.Title,
			Description: created.Description,
			DueDate:     created.DueDate,
		},
		UserID: created.UserID,
		State:  mapper.ToStateResponse(h.store.Snapshot()),
	})
}

func (h *DialogHandler) Confirm(c *gin.Context) {
	shell, ok := h.shell(c)
	if !ok {
		return
	}
	shell.Confirm()
	h.respondClosed(c, shell)
}

func (h *DialogHandler) Cancel(c *gin.Context) {
	shell, ok := h.shell(c)
	if !ok {
		return
	}
	shell.Cancel()
	h.respondClosed(c, shell)
}

// Escape closes the dialog only when its config allows it.
func (h *DialogHandler) Escape(c *gin.Context) {
	shell, ok := h.shell(c)
	if !ok {
		return
	}
	shell.Escape()
	h.respondClosed(c, shell)
}

func (h *DialogHandler) BackdropClick(c *gin.Context) {
	shell, ok := h.shell(c)
	if !ok {
		return
	}
	shell.BackdropClick()
	h.respondClosed(c, shell)
}

func (h *DialogHandler) shell(c *gin.Context) (*dialog.Shell, bool) {
	shell, ok := h.outlet.Get(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, apierrors.MsgDialogNotFound)
		return nil, false
	}
	return shell, true
}

func (h *DialogHandler) respondClosed(c *gin.Context, shell *dialog.Shell) {
	ref := shell.Ref()
	c.JSON(http.StatusOK, dto.DialogClosedResponse{
		ID:     shell.ID(),
		Closed: ref.Closed(),
		Result: ref.Result(),
	})
}
