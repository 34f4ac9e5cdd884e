package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/axlwolf/task-manager/internal/app/usecase"
	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/internal/core/ports/mocks"
)

func TestGetTasks_DelegatesToRepository(t *testing.T) {
	repo := new(mocks.TaskRepository)
	want := []domain.Task{{ID: "1", Title: "A", UserID: "u1"}}
	repo.On("GetTasks", mock.Anything, "u1").Return(want, nil).Once()

	got, err := usecase.NewGetTasks(repo).Execute(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestGetTasks_PropagatesError(t *testing.T) {
	repo := new(mocks.TaskRepository)
	repo.On("GetTasks", mock.Anything, "u1").Return(nil, domain.ErrTransport).Once()

	_, err := usecase.NewGetTasks(repo).Execute(context.Background(), "u1")
	require.ErrorIs(t, err, domain.ErrTransport)
}

func TestGetUsers_DelegatesToRepository(t *testing.T) {
	repo := new(mocks.UserRepository)
	want := []domain.User{{ID: "1", Name: "Jasmine"}}
	repo.On("GetUsers", mock.Anything).Return(want, nil).Once()

	got, err := usecase.NewGetUsers(repo).Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestCompleteTask_PropagatesNotFound(t *testing.T) {
	repo := new(mocks.TaskRepository)
	repo.On("CompleteTask", mock.Anything, "missing").Return(nil, domain.ErrTaskNotFound).Once()

	_, err := usecase.NewCompleteTask(repo).Execute(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	repo.AssertExpectations(t)
}

func TestCreateTask_ParsesStringDueDateAndForcesPending(t *testing.T) {
	repo := new(mocks.TaskRepository)
	expectedInput := domain.CreateTaskInput{
		Title:       "Ship",
		Description: "release notes",
		DueDate:     time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		UserID:      "u1",
		Completed:   false,
	}
	created := domain.Task{ID: "42", Title: "Ship", UserID: "u1"}
	repo.On("CreateTask", mock.Anything, expectedInput).Return(created, nil).Once()

	got, err := usecase.NewCreateTask(repo).Execute(context.Background(), usecase.CreateTaskDTO{
		Title:       "Ship",
		Description: "release notes",
		DueDate:     "2026-02-20",
		UserID:      "u1",
	})
	require.NoError(t, err)
	require.Equal(t, created, got)
	repo.AssertExpectations(t)
}

func TestCreateTask_PrefersConcreteDueDate(t *testing.T) {
	repo := new(mocks.TaskRepository)
	dueAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(in domain.CreateTaskInput) bool {
		return in.DueDate.Equal(dueAt) && !in.Completed
	})).Return(domain.Task{ID: "1"}, nil).Once()

	_, err := usecase.NewCreateTask(repo).Execute(context.Background(), usecase.CreateTaskDTO{
		Title:   "Ship",
		DueDate: "not a date",
		DueAt:   &dueAt,
		UserID:  "u1",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateTask_InvalidDueDateNeverReachesRepository(t *testing.T) {
	repo := new(mocks.TaskRepository)

	_, err := usecase.NewCreateTask(repo).Execute(context.Background(), usecase.CreateTaskDTO{
		Title:   "Ship",
		DueDate: "20/02/2026",
		UserID:  "u1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidDueDate)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestCreateTask_PropagatesRepositoryError(t *testing.T) {
	repo := new(mocks.TaskRepository)
	boom := errors.New("backend unavailable")
	repo.On("CreateTask", mock.Anything, mock.Anything).Return(nil, boom).Once()

	_, err := usecase.NewCreateTask(repo).Execute(context.Background(), usecase.CreateTaskDTO{
		Title:   "Ship",
		DueDate: "2026-02-20T10:00:00Z",
		UserID:  "u1",
	})
	require.ErrorIs(t, err, boom)
}

func TestParseDueDate(t *testing.T) {
	got, err := usecase.ParseDueDate(" 2026-02-20 ")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), got)

	_, err = usecase.ParseDueDate("")
	require.ErrorIs(t, err, domain.ErrInvalidDueDate)
}
