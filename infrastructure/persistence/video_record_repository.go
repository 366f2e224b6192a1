package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"crosscast/domain/model"
	"crosscast/domain/repository"
	"crosscast/infrastructure/logger"
)

type VideoRecordRepository struct {
	db *sql.DB
}

func NewVideoRecordRepository(db *sql.DB) repository.IVideoRecord {
	return &VideoRecordRepository{db: db}
}

// Save writes the record and all of its per-platform targets in one
// transaction so history never shows a video with missing targets.
func (r *VideoRecordRepository) Save(ctx context.Context, userID string, record *model.VideoRecord) (*model.VideoRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO video_records (id, user_id, title, description, hashtags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID, userID, record.Title, record.Description, pq.Array(record.Hashtags), record.Timestamp,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to insert video record")
		return nil, fmt.Errorf("failed to insert video record: %w", err)
	}

	for _, target := range record.PlatformTargets {
		externalRef := record.PlatformExternalIDs[target.Platform]
		_, err = tx.ExecContext(ctx,
			`INSERT INTO publish_targets (video_id, platform, status, error_message, external_ref)
			VALUES ($1, $2, $3, $4, $5)`,
			record.ID, string(target.Platform), string(target.Status), target.ErrorMessage, externalRef,
		)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Failed to insert publish target")
			return nil, fmt.Errorf("failed to insert publish target: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit video record: %w", err)
	}
	return record, nil
}

// ListByUser returns the user's publish history, newest first.
func (r *VideoRecordRepository) ListByUser(ctx context.Context, userID string) ([]*model.VideoRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, hashtags, created_at
		FROM video_records WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to query video records")
		return nil, fmt.Errorf("failed to query video records: %w", err)
	}
	defer rows.Close()

	records := make([]*model.VideoRecord, 0)
	ids := make([]string, 0)
	index := make(map[string]int)
	for rows.Next() {
		record := &model.VideoRecord{}
		var hashtags pq.StringArray
		if err := rows.Scan(&record.ID, &record.Title, &record.Description, &hashtags, &record.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan video record: %w", err)
		}
		record.Hashtags = hashtags
		record.PlatformExternalIDs = make(map[model.Platform]string)
		index[record.ID] = len(records)
		ids = append(ids, record.ID)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate video records: %w", err)
	}
	if len(records) == 0 {
		return records, nil
	}

	targetRows, err := r.db.QueryContext(ctx,
		`SELECT video_id, platform, status, error_message, external_ref
		FROM publish_targets WHERE video_id = ANY($1) ORDER BY id`,
		pq.Array(ids),
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to query publish targets")
		return nil, fmt.Errorf("failed to query publish targets: %w", err)
	}
	defer targetRows.Close()

	for targetRows.Next() {
		var videoID, platform, status string
		var errorMessage, externalRef sql.NullString
		if err := targetRows.Scan(&videoID, &platform, &status, &errorMessage, &externalRef); err != nil {
			return nil, fmt.Errorf("failed to scan publish target: %w", err)
		}
		i, ok := index[videoID]
		if !ok {
			continue
		}
		records[i].PlatformTargets = append(records[i].PlatformTargets, model.PublishTarget{
			Platform:     model.Platform(platform),
			Status:       model.PublishStatus(status),
			ErrorMessage: errorMessage.String,
		})
		if externalRef.Valid && externalRef.String != "" {
			records[i].PlatformExternalIDs[model.Platform(platform)] = externalRef.String
		}
	}
	if err := targetRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate publish targets: %w", err)
	}
	return records, nil
}
