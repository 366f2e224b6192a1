package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"crosscast/domain/model"
)

func TestUpload_AlwaysSucceedsAtRateOne(t *testing.T) {
	adapter := NewAdapter(model.PlatformTikTok, Config{
		SuccessRate: 1.0,
		Seed:        1,
	})

	for i := 0; i < 20; i++ {
		outcome := adapter.Upload(context.Background(), nil, model.UploadMetadata{Title: "t"}, nil)
		assert.True(t, outcome.Success)
		assert.Empty(t, outcome.ExternalID)
		assert.Empty(t, outcome.ErrorMessage)
	}
}

func TestUpload_AlwaysFailsAtRateZero(t *testing.T) {
	adapter := NewAdapter(model.PlatformX, Config{
		SuccessRate: 0.0,
		Seed:        42,
	})

	for i := 0; i < 20; i++ {
		outcome := adapter.Upload(context.Background(), nil, model.UploadMetadata{Title: "t"}, nil)
		assert.False(t, outcome.Success)
		assert.Equal(t, "Platform connection required", outcome.ErrorMessage)
	}
}

func TestUpload_CanceledContext(t *testing.T) {
	adapter := NewAdapter(model.PlatformLinkedIn, Config{
		MinDelay:    time.Minute,
		MaxDelay:    time.Minute,
		SuccessRate: 1.0,
		Seed:        7,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := adapter.Upload(ctx, nil, model.UploadMetadata{Title: "t"}, nil)
	assert.False(t, outcome.Success)
	assert.Equal(t, "upload to LinkedIn canceled", outcome.ErrorMessage)
}

func TestNewAdapter_ZeroConfigIsValid(t *testing.T) {
	adapter := NewAdapter(model.PlatformReddit, Config{})
	assert.Equal(t, model.PlatformReddit, adapter.Platform())
	assert.Equal(t, time.Duration(0), adapter.cfg.MinDelay)
	assert.Equal(t, time.Duration(0), adapter.cfg.MaxDelay)
	assert.Zero(t, adapter.cfg.SuccessRate)
}

func TestNewAdapter_ClampsInvalidConfig(t *testing.T) {
	adapter := NewAdapter(model.PlatformReddit, Config{
		MinDelay:    time.Second,
		MaxDelay:    time.Millisecond,
		SuccessRate: 1.5,
	})
	assert.Equal(t, time.Second, adapter.cfg.MaxDelay)
	assert.InDelta(t, 1.0, adapter.cfg.SuccessRate, 0.0001)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 3*time.Second, cfg.MinDelay)
	assert.Equal(t, 5*time.Second, cfg.MaxDelay)
	assert.InDelta(t, 0.9, cfg.SuccessRate, 0.0001)
}
