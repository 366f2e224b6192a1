package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"crosscast/infrastructure/logger"
)

// EnsureSchema creates the application tables when they do not exist yet.
// Kept idempotent so it can run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(64) PRIMARY KEY,
			user_name VARCHAR(255) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL DEFAULT '',
			name VARCHAR(255) NOT NULL DEFAULT '',
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS oauth_tokens (
			id SERIAL PRIMARY KEY,
			user_id VARCHAR(64) NOT NULL,
			platform VARCHAR(32) NOT NULL,
			access_token TEXT NOT NULL,
			refresh_token TEXT,
			expires_at TIMESTAMPTZ,
			scopes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT oauth_tokens_user_platform_key UNIQUE (user_id, platform)
		)`,
		`CREATE TABLE IF NOT EXISTS video_records (
			id VARCHAR(64) PRIMARY KEY,
			user_id VARCHAR(64) NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			hashtags TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_video_records_user_id ON video_records (user_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS publish_targets (
			id SERIAL PRIMARY KEY,
			video_id VARCHAR(64) NOT NULL REFERENCES video_records (id) ON DELETE CASCADE,
			platform VARCHAR(32) NOT NULL,
			status VARCHAR(16) NOT NULL,
			error_message TEXT,
			external_ref VARCHAR(255),
			CONSTRAINT publish_targets_video_platform_key UNIQUE (video_id, platform)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	logger.GetLogger().Info("Database schema ensured")
	return nil
}
