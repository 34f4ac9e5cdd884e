package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/internal/core/ports"
)

// CreateTaskDTO is the caller-facing task creation payload. The due date is
// taken from DueAt when set, otherwise parsed from DueDate.
type CreateTaskDTO struct {
	Title       string
	Description string
	DueDate     string
	DueAt       *time.Time
	UserID      string
}

type CreateTask struct {
	taskRepository ports.TaskRepository
}

func NewCreateTask(taskRepository ports.TaskRepository) *CreateTask {
	return &CreateTask{taskRepository: taskRepository}
}

func (u *CreateTask) Execute(ctx context.Context, dto CreateTaskDTO) (domain.Task, error) {
	dueDate, err := dto.ResolveDueDate()
	if err != nil {
		return domain.Task{}, err
	}

	return u.taskRepository.CreateTask(ctx, domain.CreateTaskInput{
		Title:       dto.Title,
		Description: dto.Description,
		DueDate:     dueDate,
		UserID:      dto.UserID,
		Completed:   false,
	})
}

// ResolveDueDate returns the concrete due date of the payload.
func (dto CreateTaskDTO) ResolveDueDate() (time.Time, error) {
	if dto.DueAt != nil {
		return *dto.DueAt, nil
	}
	return ParseDueDate(dto.DueDate)
}

// ParseDueDate accepts a calendar date or an RFC 3339 timestamp.
func ParseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty", domain.ErrInvalidDueDate)
	}
	if t, err := time.Parse(domain.DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDueDate, value)
	}
	return t, nil
}
