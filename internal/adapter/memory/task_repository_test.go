package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/axlwolf/task-manager/internal/adapter/memory"
	"github.com/axlwolf/task-manager/internal/core/domain"
)

func TestTaskRepository_GetTasks_FiltersByUserInOrder(t *testing.T) {
	repo := memory.NewTaskRepository(memory.SeedTasks())

	tasks, err := repo.GetTasks(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "3", tasks[0].ID)
	require.Equal(t, "8", tasks[1].ID)
}

func TestTaskRepository_GetTasks_UnknownUserReturnsEmptyList(t *testing.T) {
	repo := memory.NewTaskRepository(memory.SeedTasks())

	tasks, err := repo.GetTasks(context.Background(), "missing")
	require.NoError(t, err)
	require.NotNil(t, tasks)
	require.Empty(t, tasks)
}

func TestTaskRepository_GetTaskByID_NotFound(t *testing.T) {
	repo := memory.NewTaskRepository(memory.SeedTasks())

	_, err := repo.GetTaskByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskRepository_CreateTask_AssignsIDAndForcesPending(t *testing.T) {
	repo := memory.NewTaskRepository(nil)
	dueDate := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	created, err := repo.CreateTask(context.Background(), domain.CreateTaskInput{
		Title:     "Write docs",
		DueDate:   dueDate,
		UserID:    "1",
		Completed: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.Completed)
	require.Equal(t, dueDate, created.DueDate)

	got, err := repo.GetTaskByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestTaskRepository_UpdateTask_MergesPartialFields(t *testing.T) {
	repo := memory.NewTaskRepository(memory.SeedTasks())
	title := "Master Go"

	updated, err := repo.UpdateTask(context.Background(), "1", domain.UpdateTaskInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Master Go", updated.Title)
	require.Equal(t, "Learn all the basic and advanced features of Angular & how to apply them", updated.Description)
	require.Equal(t, "1", updated.UserID)
}

func TestTaskRepository_UpdateTask_NotFound(t *testing.T) {
	repo := memory.NewTaskRepository(memory.SeedTasks())
	title := "x"

	_, err := repo.UpdateTask(context.Background(), "missing", domain.UpdateTaskInput{Title: &title})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskRepository_CompleteTask(t *testing.T) {
	repo := memory.NewTaskRepository(memory.SeedTasks())

	completed, err := repo.CompleteTask(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, completed.Completed)

	_, err = repo.CompleteTask(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskRepository_DeleteTask_MissingIsSilent(t *testing.T) {
	repo := memory.NewTaskRepository(memory.SeedTasks())

	require.NoError(t, repo.DeleteTask(context.Background(), "missing"))
	require.NoError(t, repo.DeleteTask(context.Background(), "1"))

	_, err := repo.GetTaskByID(context.Background(), "1")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	tasks, err := repo.GetTasks(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "2", tasks[0].ID)
}

func TestTaskRepository_CanceledContext(t *testing.T) {
	repo := memory.NewTaskRepository(memory.SeedTasks())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetTasks(ctx, "1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestUserRepository(t *testing.T) {
	repo := memory.NewUserRepository(memory.SeedUsers())

	users, err := repo.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 6)
	require.Equal(t, "Jasmine Washington", users[0].Name)
	require.NotNil(t, users[0].Avatar)

	user, err := repo.GetUserByID(context.Background(), "3")
	require.NoError(t, err)
	require.Equal(t, "Marcus Johnson", user.Name)

	_, err = repo.GetUserByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
