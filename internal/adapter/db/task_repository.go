package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/internal/core/ports"
)

const (
	listTasksByUserQuery = `
SELECT id, title, description, due_date, user_id, completed
FROM tasks
WHERE user_id = ?
ORDER BY position;
`
	getTaskQuery = `
SELECT id, title, description, due_date, user_id, completed
FROM tasks
WHERE id = ?;
`
	insertTaskQuery = `
INSERT INTO tasks (id, title, description, due_date, user_id, completed)
VALUES (:id, :title, :description, :due_date, :user_id, :completed);
`
	updateTaskQuery = `
UPDATE tasks
SET title = :title, description = :description, due_date = :due_date, completed = :completed
WHERE id = :id;
`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?;`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     time.Time `db:"due_date"`
	UserID      string    `db:"user_id"`
	Completed   bool      `db:"completed"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByUserQuery, userID); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, taskID string) (domain.Task, error) {
	return r.getTask(ctx, r.db, taskID)
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		UserID:      input.UserID,
		Completed:   false,
	}
	if _, err := r.db.NamedExecContext(ctx, insertTaskQuery, mapDomainTaskToRow(task)); err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	return task, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	current, err := r.getTask(ctx, tx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	updated := input.Apply(current)
	if _, err := tx.NamedExecContext(ctx, updateTaskQuery, mapDomainTaskToRow(updated)); err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	return updated, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	if _, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	return nil
}

func (r *TaskRepository) CompleteTask(ctx context.Context, taskID string) (domain.Task, error) {
	completed := true
	return r.UpdateTask(ctx, taskID, domain.UpdateTaskInput{Completed: &completed})
}

func (r *TaskRepository) getTask(ctx context.Context, q sqlx.QueryerContext, taskID string) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, q, &row, getTaskQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
		}
		return domain.Task{}, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		DueDate:     row.DueDate,
		UserID:      row.UserID,
		Completed:   row.Completed,
	}
}

func mapDomainTaskToRow(task domain.Task) taskRow {
	return taskRow{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		UserID:      task.UserID,
		Completed:   task.Completed,
	}
}
