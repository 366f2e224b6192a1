package repository

import (
	"context"

	"crosscast/domain/model"
)

// IVideoRecord persists finalized publish records.
type IVideoRecord interface {
	// Save writes the record and all its targets atomically.
	Save(ctx context.Context, userID string, record *model.VideoRecord) (*model.VideoRecord, error)
	// ListByUser returns the user's records, most recent first.
	ListByUser(ctx context.Context, userID string) ([]*model.VideoRecord, error)
}

// IHistoryCache is an optional read-through cache over ListByUser.
type IHistoryCache interface {
	GetHistory(ctx context.Context, userID string) ([]*model.VideoRecord, error)
	SetHistory(ctx context.Context, userID string, records []*model.VideoRecord) error
	Invalidate(ctx context.Context, userID string) error
}
