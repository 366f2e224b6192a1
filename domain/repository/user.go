package repository

import (
	"context"

	"crosscast/domain/model"
)

// IUser provides account lookup and creation.
type IUser interface {
	GetByUserName(ctx context.Context, userName string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}
