package repository

import (
	"context"

	"crosscast/domain/model"
)

// IOAuthToken stores platform credentials per (user, platform) pair.
type IOAuthToken interface {
	// GetToken returns the stored credential, or (nil, nil) when absent.
	GetToken(ctx context.Context, userID string, platform model.Platform) (*model.OAuthToken, error)
	// UpsertToken overwrites any prior credential for the pair.
	UpsertToken(ctx context.Context, t *model.OAuthToken) error
}

// ITokenProvider exchanges and refreshes OAuth credentials with the external
// authorization server.
type ITokenProvider interface {
	Exchange(ctx context.Context, userID string, platform model.Platform, code string) (*model.OAuthToken, error)
	Refresh(ctx context.Context, userID string, platform model.Platform, refreshToken string) (*model.OAuthToken, error)
}
