package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/axlwolf/task-manager/internal/adapter/http/dto"
	"github.com/axlwolf/task-manager/internal/adapter/http/mapper"
	"github.com/axlwolf/task-manager/internal/adapter/http/validation"
	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/internal/core/ports"
	"github.com/axlwolf/task-manager/pkg/apierrors"
)

type TaskHandler struct {
	store         SessionStore
	tasks         ports.TaskRepository
	settleTimeout time.Duration
}

func NewTaskHandler(store SessionStore, tasks ports.TaskRepository) *TaskHandler {
	return &TaskHandler{store: store, tasks: tasks, settleTimeout: DefaultSettleTimeout}
}

// ListTasks returns the task list of the selected user.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToTaskItems(h.store.Snapshot().Tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.tasks.GetTaskByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			abortWithError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
			return
		}
		zap.L().Error("failed to get task", zap.String("task_id", c.Param("id")), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	createDTO, err := validation.BuildCreateTaskDTO(req, h.store.Snapshot().SelectedUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDueDate):
			abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidDueDate)
		case errors.Is(err, validation.ErrMissingUser):
			abortWithError(c, http.StatusConflict, apierrors.MsgNoUserSelected)
		default:
			abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		}
		return
	}

	h.store.CreateTask(createDTO)
	respondSettled(c, h.store, h.settleTimeout, http.StatusCreated)
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if _, err := h.tasks.GetTaskByID(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			abortWithError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
			return
		}
		zap.L().Error("failed to look up task", zap.String("task_id", taskID), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, apierrors.MsgFailCompleteTask)
		return
	}

	h.store.CompleteTask(taskID)
	respondSettled(c, h.store, h.settleTimeout, http.StatusOK)
}
