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

type OAuthTokenRepository struct {
	db *sql.DB
}

func NewOAuthTokenRepository(db *sql.DB) repository.IOAuthToken {
	return &OAuthTokenRepository{db: db}
}

// GetToken returns the stored credential for (user, platform), or (nil, nil)
// when the user never connected that platform.
func (r *OAuthTokenRepository) GetToken(ctx context.Context, userID string, platform model.Platform) (*model.OAuthToken, error) {
	query := `SELECT id, user_id, platform, access_token, refresh_token, expires_at, scopes, created_at, updated_at
		FROM oauth_tokens WHERE user_id = $1 AND platform = $2`

	var token model.OAuthToken
	var refreshToken sql.NullString
	var expiresAt sql.NullTime
	var scopes sql.NullString

	err := r.db.QueryRowContext(ctx, query, userID, string(platform)).Scan(
		&token.ID, &token.UserID, &token.Platform, &token.AccessToken,
		&refreshToken, &expiresAt, &scopes, &token.CreatedAt, &token.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to query oauth token")
		return nil, fmt.Errorf("failed to query oauth token: %w", err)
	}

	token.RefreshToken = refreshToken.String
	token.Scopes = scopes.String
	if expiresAt.Valid {
		t := expiresAt.Time
		token.ExpiresAt = &t
	}
	return &token, nil
}

// UpsertToken inserts or replaces the credential for (user, platform). A
// missing refresh token on update keeps the previously stored one, since
// Google only returns it on the first consent.
func (r *OAuthTokenRepository) UpsertToken(ctx context.Context, token *model.OAuthToken) error {
	query := `INSERT INTO oauth_tokens (user_id, platform, access_token, refresh_token, expires_at, scopes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id, platform) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = COALESCE(NULLIF(EXCLUDED.refresh_token, ''), oauth_tokens.refresh_token),
			expires_at = EXCLUDED.expires_at,
			scopes = EXCLUDED.scopes,
			updated_at = NOW()`

	var expiresAt interface{}
	if token.ExpiresAt != nil {
		expiresAt = *token.ExpiresAt
	}

	_, err := r.db.ExecContext(ctx, query,
		token.UserID, string(token.Platform), token.AccessToken,
		token.RefreshToken, expiresAt, token.Scopes,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to upsert oauth token")
		return fmt.Errorf("failed to upsert oauth token: %w", err)
	}
	return nil
}
