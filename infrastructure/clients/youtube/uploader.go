package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"crosscast/domain/model"
	"crosscast/domain/repository"
	"crosscast/infrastructure/logger"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 5000
	maxTags              = 10
	defaultCategoryID    = "22" // People & Blogs
)

// videoInserter abstracts the videos.insert call so the upload flow can be
// tested without the network.
type videoInserter interface {
	Insert(ctx context.Context, video *youtubeapi.Video, asset *model.MediaAsset) (*youtubeapi.Video, error)
}

// tokenRefresher renews an expired credential and persists the replacement.
type tokenRefresher interface {
	Refresh(ctx context.Context, userID string, platform model.Platform, refreshToken string) (*model.OAuthToken, error)
}

// Uploader publishes videos to YouTube via the Data API. A rejected access
// token is refreshed once and the upload retried once; any further auth
// failure is final.
type Uploader struct {
	refresher   tokenRefresher
	newInserter func(ctx context.Context, accessToken string) (videoInserter, error)
}

func NewUploader(refresher repository.ITokenProvider) *Uploader {
	return &Uploader{
		refresher:   refresher,
		newInserter: newAPIInserter,
	}
}

func (u *Uploader) Platform() model.Platform {
	return model.PlatformYouTube
}

func (u *Uploader) Upload(ctx context.Context, asset *model.MediaAsset, meta model.UploadMetadata, credential *model.OAuthToken) model.UploadOutcome {
	if credential == nil || credential.AccessToken == "" {
		return model.UploadOutcome{ErrorMessage: "YouTube account not connected"}
	}

	video := buildVideo(meta)

	inserted, err := u.insert(ctx, credential.AccessToken, video, asset)
	if err == nil {
		return model.UploadOutcome{Success: true, ExternalID: inserted.Id}
	}
	if !isAuthError(err) {
		logger.GetLogger().WithField("error", err).Error("YouTube upload failed")
		return model.UploadOutcome{ErrorMessage: fmt.Sprintf("YouTube upload failed: %v", err)}
	}

	// Access token rejected. Refresh once and retry once.
	if credential.RefreshToken == "" {
		return model.UploadOutcome{ErrorMessage: "YouTube authorization expired, please reconnect"}
	}
	refreshed, rErr := u.refresher.Refresh(ctx, credential.UserID, credential.Platform, credential.RefreshToken)
	if rErr != nil {
		logger.GetLogger().WithField("error", rErr).Warn("YouTube token refresh failed")
		return model.UploadOutcome{ErrorMessage: "YouTube authorization expired, please reconnect"}
	}

	inserted, err = u.insert(ctx, refreshed.AccessToken, video, asset)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("YouTube upload failed after token refresh")
		return model.UploadOutcome{ErrorMessage: fmt.Sprintf("YouTube upload failed: %v", err)}
	}
	return model.UploadOutcome{Success: true, ExternalID: inserted.Id}
}

func (u *Uploader) insert(ctx context.Context, accessToken string, video *youtubeapi.Video, asset *model.MediaAsset) (*youtubeapi.Video, error) {
	inserter, err := u.newInserter(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return inserter.Insert(ctx, video, asset)
}

// buildVideo normalizes caption metadata into the YouTube video resource.
// The description is the free text followed by a blank line and the
// #-prefixed tags; both title and description are truncated to the API
// limits, and at most ten tags are sent.
func buildVideo(meta model.UploadMetadata) *youtubeapi.Video {
	title := truncateRunes(meta.Title, maxTitleLength)

	description := meta.Description
	if len(meta.Hashtags) > 0 {
		tags := make([]string, len(meta.Hashtags))
		for i, tag := range meta.Hashtags {
			tags[i] = "#" + strings.TrimPrefix(tag, "#")
		}
		description = description + "\n\n" + strings.Join(tags, " ")
	}
	description = truncateRunes(description, maxDescriptionLength)

	tags := meta.Hashtags
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	return &youtubeapi.Video{
		Snippet: &youtubeapi.VideoSnippet{
			Title:       title,
			Description: description,
			Tags:        tags,
			CategoryId:  defaultCategoryID,
		},
		Status: &youtubeapi.VideoStatus{
			PrivacyStatus:           "public",
			SelfDeclaredMadeForKids: false,
			ForceSendFields:         []string{"SelfDeclaredMadeForKids"},
		},
	}
}

// truncateRunes caps s at max characters, never splitting a rune. The API
// limits count characters, not bytes.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// isAuthError reports whether the API rejected the access token itself.
func isAuthError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 401
	}
	return false
}

type apiInserter struct {
	service *youtubeapi.Service
}

func newAPIInserter(ctx context.Context, accessToken string) (videoInserter, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	service, err := youtubeapi.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &apiInserter{service: service}, nil
}

func (i *apiInserter) Insert(ctx context.Context, video *youtubeapi.Video, asset *model.MediaAsset) (*youtubeapi.Video, error) {
	call := i.service.Videos.Insert([]string{"snippet", "status"}, video).Context(ctx)
	// A fresh reader per attempt so a retry re-sends the full payload.
	call = call.Media(asset.Reader(), googleapi.ContentType(asset.MimeType))
	return call.Do()
}
