package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"crosscast/domain/model"
	"crosscast/domain/repository"
)

const historyTTL = 60 * time.Second

// HistoryCache caches publish history per user. Entries are short-lived and
// invalidated on every new publish.
type HistoryCache struct {
	client *redis.Client
}

func NewHistoryCache(client *redis.Client) repository.IHistoryCache {
	return &HistoryCache{client: client}
}

func historyKey(userID string) string {
	return fmt.Sprintf("publish:history:%s", userID)
}

// GetHistory returns the cached records, or (nil, nil) on a miss.
func (c *HistoryCache) GetHistory(ctx context.Context, userID string) ([]*model.VideoRecord, error) {
	payload, err := c.client.Get(ctx, historyKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history cache: %w", err)
	}
	var records []*model.VideoRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("failed to decode history cache: %w", err)
	}
	return records, nil
}

func (c *HistoryCache) SetHistory(ctx context.Context, userID string, records []*model.VideoRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode history cache: %w", err)
	}
	if err := c.client.Set(ctx, historyKey(userID), payload, historyTTL).Err(); err != nil {
		return fmt.Errorf("failed to write history cache: %w", err)
	}
	return nil
}

func (c *HistoryCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, historyKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate history cache: %w", err)
	}
	return nil
}
