package googleauth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/sync/singleflight"

	"crosscast/domain/model"
	"crosscast/domain/repository"
	"crosscast/infrastructure/configuration"
	"crosscast/infrastructure/logger"
)

// TokenProvider exchanges and refreshes Google OAuth credentials and persists
// them through the token repository. Concurrent refreshes for the same
// (user, platform) pair are collapsed into one round trip.
type TokenProvider struct {
	oauth     *oauth2.Config
	tokenRepo repository.IOAuthToken
	group     singleflight.Group
}

func NewTokenProvider(cfg configuration.YouTube, tokenRepo repository.IOAuthToken) *TokenProvider {
	return &TokenProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.Scopes,
			Endpoint:     google.Endpoint,
		},
		tokenRepo: tokenRepo,
	}
}

// AuthCodeURL builds the consent URL for the given opaque state.
func (p *TokenProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for tokens and stores them.
func (p *TokenProvider) Exchange(ctx context.Context, userID string, platform model.Platform, code string) (*model.OAuthToken, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	stored := toModel(userID, platform, token, p.oauth.Scopes)
	if err := p.tokenRepo.UpsertToken(ctx, stored); err != nil {
		return nil, err
	}
	logger.GetLogger().WithField("user_id", userID).WithField("platform", platform).Info("OAuth tokens stored")
	return stored, nil
}

// Refresh renews the access token using the stored refresh token and persists
// the result. Simultaneous callers for the same pair share one refresh.
func (p *TokenProvider) Refresh(ctx context.Context, userID string, platform model.Platform, refreshToken string) (*model.OAuthToken, error) {
	key := userID + "|" + string(platform)
	result, err, _ := p.group.Do(key, func() (interface{}, error) {
		source := p.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
		token, err := source.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to refresh token: %w", err)
		}
		// Google omits the refresh token on renewal; keep the old one.
		if token.RefreshToken == "" {
			token.RefreshToken = refreshToken
		}
		stored := toModel(userID, platform, token, p.oauth.Scopes)
		if err := p.tokenRepo.UpsertToken(ctx, stored); err != nil {
			return nil, err
		}
		return stored, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.OAuthToken), nil
}

func toModel(userID string, platform model.Platform, token *oauth2.Token, scopes []string) *model.OAuthToken {
	stored := &model.OAuthToken{
		UserID:       userID,
		Platform:     platform,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Scopes:       strings.Join(scopes, " "),
		UpdatedAt:    time.Now().UTC(),
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry.UTC()
		stored.ExpiresAt = &expiry
	}
	return stored
}
