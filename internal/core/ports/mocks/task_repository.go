package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/axlwolf/task-manager/internal/core/domain"
)

type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) GetTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *TaskRepository) GetTaskByID(ctx context.Context, taskID string) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return taskArg(args, 0), args.Error(1)
}

func (m *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return taskArg(args, 0), args.Error(1)
}

func (m *TaskRepository) UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, input)
	return taskArg(args, 0), args.Error(1)
}

func (m *TaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *TaskRepository) CompleteTask(ctx context.Context, taskID string) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return taskArg(args, 0), args.Error(1)
}

func taskArg(args mock.Arguments, index int) domain.Task {
	if value, ok := args.Get(index).(domain.Task); ok {
		return value
	}
	return domain.Task{}
}
