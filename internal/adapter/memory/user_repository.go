package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/internal/core/ports"
)

// UserRepository serves a read-only user list.
type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(seed []domain.User) *UserRepository {
	users := make([]domain.User, len(seed))
	copy(users, seed)
	return &UserRepository{users: users}
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return domain.User{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
}
