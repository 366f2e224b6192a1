package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlatformSpec_KnownPlatform(t *testing.T) {
	spec, err := GetPlatformSpec(PlatformTikTok)
	require.NoError(t, err)
	assert.Equal(t, AspectPortrait, spec.AspectRatio)
	assert.Equal(t, 180, spec.MaxDurationSeconds)
	assert.Equal(t, int64(287*1024*1024), spec.MaxFileSizeBytes)
	assert.Equal(t, Dimensions{Width: 1080, Height: 1920}, spec.Dimensions)
}

func TestGetPlatformSpec_UnknownPlatform(t *testing.T) {
	_, err := GetPlatformSpec(PlatformReddit)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestGetPlatformSpec_ReturnsCopy(t *testing.T) {
	spec, err := GetPlatformSpec(PlatformX)
	require.NoError(t, err)
	spec.MaxDurationSeconds = 1

	again, err := GetPlatformSpec(PlatformX)
	require.NoError(t, err)
	assert.Equal(t, 140, again.MaxDurationSeconds)
}

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform("youtube shorts")
	require.NoError(t, err)
	assert.Equal(t, PlatformYouTube, p)

	p, err = ParsePlatform("  X ")
	require.NoError(t, err)
	assert.Equal(t, PlatformX, p)

	_, err = ParsePlatform("Vine")
	assert.EqualError(t, err, "unsupported platform: Vine")
}

func TestPublishStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusUploading.Terminal())
	assert.True(t, StatusSuccess.Terminal())
	assert.True(t, StatusFailed.Terminal())
}
