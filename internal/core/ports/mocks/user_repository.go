package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/axlwolf/task-manager/internal/core/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *UserRepository) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	args := m.Called(ctx, userID)

	var user domain.User
	if value, ok := args.Get(0).(domain.User); ok {
		user = value
	}
	return user, args.Error(1)
}
