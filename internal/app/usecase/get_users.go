package usecase

import (
	"context"

	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/internal/core/ports"
)

type GetUsers struct {
	userRepository ports.UserRepository
}

func NewGetUsers(userRepository ports.UserRepository) *GetUsers {
	return &GetUsers{userRepository: userRepository}
}

func (u *GetUsers) Execute(ctx context.Context) ([]domain.User, error) {
	return u.userRepository.GetUsers(ctx)
}
