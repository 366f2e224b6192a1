package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crosscast/domain/model"
	"crosscast/domain/repository"
	"crosscast/infrastructure/logger"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.IUser {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*model.User, error) {
	var user model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_name, email, name, password, created_at FROM users WHERE user_name = $1`,
		userName,
	).Scan(&user.ID, &user.UserName, &user.Email, &user.Name, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to query user by name")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_name, email, name, password, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.UserName, &user.Email, &user.Name, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to query user by id")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, user_name, email, name, password, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`,
		user.ID, user.UserName, user.Email, user.Name, user.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to insert user")
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}
