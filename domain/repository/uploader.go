package repository

import (
	"context"

	"crosscast/domain/model"
)

// IUploadAdapter pushes one media asset plus metadata to one external
// platform. Ordinary failures (missing or expired credential, quota, network)
// are reported inside the UploadOutcome, never as a panic or error; only
// programming faults may escape.
type IUploadAdapter interface {
	Platform() model.Platform
	Upload(ctx context.Context, asset *model.MediaAsset, meta model.UploadMetadata, credential *model.OAuthToken) model.UploadOutcome
}
