package validation

import (
	"errors"
	"strings"

	"github.com/axlwolf/task-manager/internal/adapter/http/dto"
	"github.com/axlwolf/task-manager/internal/app/store"
	"github.com/axlwolf/task-manager/internal/app/usecase"
	"github.com/axlwolf/task-manager/internal/core/domain"
)

var ErrMissingUser = errors.New("task payload has no user")

// BuildCreateTaskDTO trims the payload, resolves the due date and falls back
// to the selected user when the request names none.
func BuildCreateTaskDTO(req dto.CreateTaskRequest, selectedUserID *string) (usecase.CreateTaskDTO, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return usecase.CreateTaskDTO{}, domain.ErrInvalidTaskPayload
	}

	dueAt, err := usecase.ParseDueDate(req.DueDate)
	if err != nil {
		return usecase.CreateTaskDTO{}, err
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		if selectedUserID == nil {
			return usecase.CreateTaskDTO{}, ErrMissingUser
		}
		userID = *selectedUserID
	}

	return usecase.CreateTaskDTO{
		Title:       title,
		Description: req.Description,
		DueDate:     dueAt.Format(domain.DateLayout),
		DueAt:       &dueAt,
		UserID:      userID,
	}, nil
}

func ToTaskFormValues(req dto.TaskFormRequest) store.TaskFormValues {
	return store.TaskFormValues{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
}
