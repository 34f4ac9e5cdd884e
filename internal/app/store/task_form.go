package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/axlwolf/task-manager/internal/app/dialog"
	"github.com/axlwolf/task-manager/internal/app/usecase"
	"github.com/axlwolf/task-manager/internal/core/domain"
)

var (
	ErrInvalidForm    = errors.New("invalid task form")
	ErrNoUserSelected = errors.New("no user selected")
	ErrFormClosed     = errors.New("task form is closed")
)

// FormError lists the invalid fields of a submitted form.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", ErrInvalidForm, strings.Join(names, ", "))
}

func (e *FormError) Unwrap() error {
	return ErrInvalidForm
}

type TaskFormValues struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// TaskForm is the dialog content used to create a task for the selected user.
type TaskForm struct {
	store *Store

	mu        sync.Mutex
	ref       *dialog.Ref
	values    TaskFormValues
	destroyed bool
}

var _ dialog.Content = (*TaskForm)(nil)

// NewTaskForm returns a blank form whose due date defaults to today.
func NewTaskForm(store *Store, today time.Time) *TaskForm {
	return &TaskForm{
		store:  store,
		values: TaskFormValues{DueDate: today.Format(domain.DateLayout)},
	}
}

func (f *TaskForm) Kind() dialog.Kind {
	return dialog.KindTaskForm
}

func (f *TaskForm) Mount(ref *dialog.Ref) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ref = ref
	return nil
}

func (f *TaskForm) Destroy() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed = true
}

// Values returns the initial field values.
func (f *TaskForm) Values() TaskFormValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Submit validates values, hands the task to the store and closes the dialog
// with the creation payload as result.
func (f *TaskForm) Submit(values TaskFormValues) (usecase.CreateTaskDTO, error) {
	f.mu.Lock()
	ref, destroyed := f.ref, f.destroyed
	f.mu.Unlock()
	if destroyed {
		return usecase.CreateTaskDTO{}, ErrFormClosed
	}

	title := strings.TrimSpace(values.Title)
	fields := make(map[string]string)
	if title == "" {
		fields["title"] = "Title is required"
	}
	var dueAt time.Time
	if strings.TrimSpace(values.DueDate) == "" {
		fields["due_date"] = "Due date is required"
	} else {
		parsed, err := usecase.ParseDueDate(values.DueDate)
		if err != nil {
			fields["due_date"] = "Due date is invalid"
		}
		dueAt = parsed
	}
	if len(fields) > 0 {
		return usecase.CreateTaskDTO{}, &FormError{Fields: fields}
	}

	userID := f.store.Snapshot().SelectedUserID
	if userID == nil {
		f.store.logger.Error("no user selected")
		return usecase.CreateTaskDTO{}, ErrNoUserSelected
	}

	dto := usecase.CreateTaskDTO{
		Title:       title,
		Description: values.Description,
		DueDate:     dueAt.Format(domain.DateLayout),
		DueAt:       &dueAt,
		UserID:      *userID,
	}
	f.store.CreateTask(dto)
	if ref != nil {
		ref.Close(dto)
	}
	return dto, nil
}
