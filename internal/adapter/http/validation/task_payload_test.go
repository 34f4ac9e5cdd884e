package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlwolf/task-manager/internal/adapter/http/dto"
	"github.com/axlwolf/task-manager/internal/adapter/http/validation"
	"github.com/axlwolf/task-manager/internal/core/domain"
)

func TestBuildCreateTaskDTO(t *testing.T) {
	selected := "1"

	got, err := validation.BuildCreateTaskDTO(dto.CreateTaskRequest{
		Title:   "  Plan  ",
		DueDate: "2026-11-01T10:00:00Z",
	}, &selected)
	require.NoError(t, err)
	assert.Equal(t, "Plan", got.Title)
	assert.Equal(t, "1", got.UserID)
	assert.Equal(t, "2026-11-01", got.DueDate)
	require.NotNil(t, got.DueAt)

	got, err = validation.BuildCreateTaskDTO(dto.CreateTaskRequest{Title: "x", DueDate: "2026-11-01", UserID: "4"}, &selected)
	require.NoError(t, err)
	assert.Equal(t, "4", got.UserID)
}

func TestBuildCreateTaskDTO_Errors(t *testing.T) {
	_, err := validation.BuildCreateTaskDTO(dto.CreateTaskRequest{Title: " ", DueDate: "2026-11-01"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTaskPayload)

	_, err = validation.BuildCreateTaskDTO(dto.CreateTaskRequest{Title: "x", DueDate: "tomorrow"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidDueDate)

	_, err = validation.BuildCreateTaskDTO(dto.CreateTaskRequest{Title: "x", DueDate: "2026-11-01"}, nil)
	assert.ErrorIs(t, err, validation.ErrMissingUser)
}
