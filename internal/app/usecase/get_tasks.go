package usecase

import (
	"context"

	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/internal/core/ports"
)

type GetTasks struct {
	taskRepository ports.TaskRepository
}

func NewGetTasks(taskRepository ports.TaskRepository) *GetTasks {
	return &GetTasks{taskRepository: taskRepository}
}

func (u *GetTasks) Execute(ctx context.Context, userID string) ([]domain.Task, error) {
	return u.taskRepository.GetTasks(ctx, userID)
}
