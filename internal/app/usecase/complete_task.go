package usecase

import (
	"context"

	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/internal/core/ports"
)

type CompleteTask struct {
	taskRepository ports.TaskRepository
}

func NewCompleteTask(taskRepository ports.TaskRepository) *CompleteTask {
	return &CompleteTask{taskRepository: taskRepository}
}

func (u *CompleteTask) Execute(ctx context.Context, taskID string) (domain.Task, error) {
	return u.taskRepository.CompleteTask(ctx, taskID)
}
