package simulated

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"crosscast/domain/model"
	"crosscast/infrastructure/logger"
)

// Config tunes the simulated upload behavior. Zero delay and zero success
// rate are valid settings; DefaultConfig supplies the demo values.
type Config struct {
	MinDelay    time.Duration
	MaxDelay    time.Duration
	SuccessRate float64
	Seed        int64 // 0 means time-seeded
}

// DefaultConfig returns the demo tuning: 3-5s delay, 90% success.
func DefaultConfig() Config {
	return Config{
		MinDelay:    3 * time.Second,
		MaxDelay:    5 * time.Second,
		SuccessRate: 0.9,
	}
}

// Adapter fakes an upload to a platform that has no real integration yet. It
// sleeps for a random interval and then succeeds or fails by coin flip, so
// the rest of the pipeline behaves exactly as it would with a live adapter.
type Adapter struct {
	platform model.Platform
	cfg      Config

	mu  sync.Mutex
	rng *rand.Rand
}

func NewAdapter(platform model.Platform, cfg Config) *Adapter {
	if cfg.MinDelay < 0 {
		cfg.MinDelay = 0
	}
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = cfg.MinDelay
	}
	if cfg.SuccessRate < 0 {
		cfg.SuccessRate = 0
	}
	if cfg.SuccessRate > 1 {
		cfg.SuccessRate = 1
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Adapter{
		platform: platform,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *Adapter) Platform() model.Platform {
	return a.platform
}

func (a *Adapter) Upload(ctx context.Context, asset *model.MediaAsset, meta model.UploadMetadata, credential *model.OAuthToken) model.UploadOutcome {
	delay, succeed := a.roll()

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return model.UploadOutcome{ErrorMessage: fmt.Sprintf("upload to %s canceled", a.platform)}
	}

	if !succeed {
		return model.UploadOutcome{ErrorMessage: "Platform connection required"}
	}
	logger.GetLogger().WithField("platform", a.platform).WithField("title", meta.Title).Debug("Simulated upload succeeded")
	return model.UploadOutcome{Success: true}
}

func (a *Adapter) roll() (time.Duration, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	spread := a.cfg.MaxDelay - a.cfg.MinDelay
	delay := a.cfg.MinDelay
	if spread > 0 {
		delay += time.Duration(a.rng.Int63n(int64(spread)))
	}
	return delay, a.rng.Float64() < a.cfg.SuccessRate
}
