package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/internal/core/ports"
)

const (
	listUsersQuery = `SELECT id, name, avatar FROM users ORDER BY position;`
	getUserQuery   = `SELECT id, name, avatar FROM users WHERE id = ?;`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID     string         `db:"id"`
	Name   string         `db:"name"`
	Avatar sql.NullString `db:"avatar"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, listUsersQuery); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}
	return users, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, getUserQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return domain.User{}, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	return mapUserRowToDomainUser(row), nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	user := domain.User{ID: row.ID, Name: row.Name}
	if row.Avatar.Valid {
		value := row.Avatar.String
		user.Avatar = &value
	}
	return user
}
