package ports

import (
	"context"

	"github.com/axlwolf/task-manager/internal/core/domain"
)

type TaskRepository interface {
	GetTasks(ctx context.Context, userID string) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, taskID string) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	// DeleteTask is a no-op when the task does not exist.
	DeleteTask(ctx context.Context, taskID string) error
	CompleteTask(ctx context.Context, taskID string) (domain.Task, error)
}

type UserRepository interface {
	GetUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, userID string) (domain.User, error)
}
