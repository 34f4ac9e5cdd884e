package domain

import "time"

// DateLayout is the calendar-date layout used for due dates.
const DateLayout = "2006-01-02"

type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     time.Time
	UserID      string
	Completed   bool
}

// CreateTaskInput is a task without its identifier.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	UserID      string
	Completed   bool
}

// UpdateTaskInput carries the fields to overwrite; nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
}

// Apply returns a copy of task with the set fields of in merged over it.
func (in UpdateTaskInput) Apply(task Task) Task {
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}
	return task
}
