package dto

import (
	"crosscast/domain/model"
)

// PublishRequest describes one publish submission. The media payload arrives
// separately as a multipart file.
type PublishRequest struct {
	Title       string   `form:"title" binding:"required"`
	Description string   `form:"description"`
	Hashtags    []string `form:"hashtags"`
	Platforms   []string `form:"platforms" binding:"required"`
}

// PublishResponse wraps the finalized record returned to the caller.
type PublishResponse struct {
	Record *model.VideoRecord `json:"record"`
}

// PlatformCapability is one row of the capability table exposed to clients.
// Platforms without a registered spec are listed without constraint data.
type PlatformCapability struct {
	Platform model.Platform      `json:"platform"`
	Spec     *model.PlatformSpec `json:"spec,omitempty"`
}
