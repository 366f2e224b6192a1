package model

import (
	"bytes"
	"io"
	"time"
)

// PublishStatus is the lifecycle state of one platform target.
type PublishStatus string

const (
	StatusPending   PublishStatus = "Pending"
	StatusUploading PublishStatus = "Uploading"
	StatusSuccess   PublishStatus = "Success"
	StatusFailed    PublishStatus = "Failed"
)

// Terminal reports whether the status is final. Terminal targets never revert.
func (s PublishStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// PublishTarget tracks the live status of one requested platform within a
// publish request.
type PublishTarget struct {
	Platform     Platform      `json:"platform"`
	Status       PublishStatus `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// VideoRecord is the persisted result of one publish request. It is assembled
// fully in memory, persisted atomically once every target is terminal, and
// never mutated afterwards.
type VideoRecord struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	Hashtags            []string            `json:"hashtags"`
	Timestamp           time.Time           `json:"timestamp"`
	PlatformTargets     []PublishTarget     `json:"platform_targets"`
	PlatformExternalIDs map[Platform]string `json:"platform_external_ids,omitempty"`
}

// MediaAsset is one in-memory media payload. Content is buffered so that a
// retry can transmit a fresh copy of the stream.
type MediaAsset struct {
	Content  []byte
	MimeType string
	Filename string
}

// Reader returns a new reader over the full payload.
func (a *MediaAsset) Reader() io.Reader {
	return bytes.NewReader(a.Content)
}

// Size returns the payload size in bytes.
func (a *MediaAsset) Size() int64 {
	return int64(len(a.Content))
}

// UploadMetadata is the caption metadata forwarded to an upload adapter.
type UploadMetadata struct {
	Title       string
	Description string
	Hashtags    []string
}

// UploadOutcome is the normalized result of one adapter upload. Ordinary
// failures (missing credential, auth expiry, quota, network) are reported
// here, never as errors.
type UploadOutcome struct {
	Success      bool
	ExternalID   string
	ErrorMessage string
}

// OAuthToken stores one platform OAuth credential per user. Overwritten on
// re-auth, never merged; last write wins.
type OAuthToken struct {
	ID           int64      `json:"id"`
	UserID       string     `json:"user_id"`
	Platform     Platform   `json:"platform"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Scopes       string     `json:"scopes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Expired reports whether the access token is past its expiry. Tokens without
// a recorded expiry are treated as live.
func (t *OAuthToken) Expired() bool {
	if t.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*t.ExpiresAt)
}
