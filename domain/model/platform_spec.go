package model

import (
	"errors"
	"fmt"
)

// ErrUnknownPlatform is returned when no capability entry exists for a platform.
var ErrUnknownPlatform = errors.New("unknown platform")

// AspectRatio is the display ratio a platform expects for video content.
type AspectRatio string

const (
	AspectPortrait  AspectRatio = "9:16"
	AspectLandscape AspectRatio = "16:9"
	AspectSquare    AspectRatio = "1:1"
	AspectVertical  AspectRatio = "4:5"
)

// Quality is the encode quality recommended for a platform.
type Quality string

const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
)

// Dimensions holds target pixel dimensions for a platform.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PlatformSpec describes the publishing constraints of one platform.
type PlatformSpec struct {
	AspectRatio        AspectRatio `json:"aspect_ratio"`
	MaxDurationSeconds int         `json:"max_duration_seconds"`
	MaxFileSizeBytes   int64       `json:"max_file_size_bytes"`
	RecommendedQuality Quality     `json:"recommended_quality"`
	Dimensions         Dimensions  `json:"dimensions"`
}

const mib = 1024 * 1024

// platformSpecs is loaded once; entries are returned by value so callers
// cannot mutate the table.
var platformSpecs = map[Platform]PlatformSpec{
	PlatformTikTok: {
		AspectRatio:        AspectPortrait,
		MaxDurationSeconds: 180,
		MaxFileSizeBytes:   287 * mib,
		RecommendedQuality: QualityHigh,
		Dimensions:         Dimensions{Width: 1080, Height: 1920},
	},
	PlatformInstagram: {
		AspectRatio:        AspectPortrait,
		MaxDurationSeconds: 90,
		MaxFileSizeBytes:   100 * mib,
		RecommendedQuality: QualityHigh,
		Dimensions:         Dimensions{Width: 1080, Height: 1920},
	},
	PlatformYouTube: {
		AspectRatio:        AspectPortrait,
		MaxDurationSeconds: 60,
		MaxFileSizeBytes:   256 * mib,
		RecommendedQuality: QualityHigh,
		Dimensions:         Dimensions{Width: 1080, Height: 1920},
	},
	PlatformFacebook: {
		AspectRatio:        AspectPortrait,
		MaxDurationSeconds: 90,
		MaxFileSizeBytes:   100 * mib,
		RecommendedQuality: QualityHigh,
		Dimensions:         Dimensions{Width: 1080, Height: 1920},
	},
	PlatformX: {
		AspectRatio:        AspectLandscape,
		MaxDurationSeconds: 140,
		MaxFileSizeBytes:   512 * mib,
		RecommendedQuality: QualityMedium,
		Dimensions:         Dimensions{Width: 1280, Height: 720},
	},
	PlatformLinkedIn: {
		AspectRatio:        AspectLandscape,
		MaxDurationSeconds: 600,
		MaxFileSizeBytes:   200 * mib,
		RecommendedQuality: QualityHigh,
		Dimensions:         Dimensions{Width: 1920, Height: 1080},
	},
}

// GetPlatformSpec returns the capability entry for a platform.
func GetPlatformSpec(p Platform) (PlatformSpec, error) {
	spec, ok := platformSpecs[p]
	if !ok {
		return PlatformSpec{}, fmt.Errorf("%w: %s", ErrUnknownPlatform, p)
	}
	return spec, nil
}
