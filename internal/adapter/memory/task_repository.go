package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/internal/core/ports"
)

// TaskRepository keeps tasks in an ordered in-process list.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []domain.Task
	newID func() string
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository returns a repository seeded with tasks. A nil seed starts empty.
func NewTaskRepository(seed []domain.Task) *TaskRepository {
	tasks := make([]domain.Task, len(seed))
	copy(tasks, seed)
	return &TaskRepository{tasks: tasks, newID: uuid.NewString}
}

func (r *TaskRepository) GetTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Task, 0)
	for _, task := range r.tasks {
		if task.UserID == userID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, taskID string) (domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	index := r.indexOf(taskID)
	if index == -1 {
		return domain.Task{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}
	return r.tasks[index], nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	task := domain.Task{
		ID:          r.newID(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		UserID:      input.UserID,
		Completed:   false,
	}
	r.tasks = append(r.tasks, task)
	return task, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	index := r.indexOf(taskID)
	if index == -1 {
		return domain.Task{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}
	updated := input.Apply(r.tasks[index])
	r.tasks[index] = updated
	return updated, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if index := r.indexOf(taskID); index != -1 {
		r.tasks = append(r.tasks[:index], r.tasks[index+1:]...)
	}
	return nil
}

func (r *TaskRepository) CompleteTask(ctx context.Context, taskID string) (domain.Task, error) {
	completed := true
	return r.UpdateTask(ctx, taskID, domain.UpdateTaskInput{Completed: &completed})
}

func (r *TaskRepository) indexOf(taskID string) int {
	for i, task := range r.tasks {
		if task.ID == taskID {
			return i
		}
	}
	return -1
}
