package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"crosscast/domain/dto"
	"crosscast/domain/model"
	"crosscast/domain/repository"
	"crosscast/infrastructure/logger"
	"crosscast/infrastructure/utils"

	"github.com/google/uuid"
)

// ErrRecordPersist marks a publish that settled every target but could not
// write the final record. Callers should surface it as an infrastructure
// fault, not a bad request.
var ErrRecordPersist = errors.New("failed to persist publish record")

// ProgressFunc receives per-target status transitions during a publish, once
// when a target enters Uploading and once when it reaches a terminal state.
type ProgressFunc func(userID, videoID string, target model.PublishTarget, externalID string)

type IPublishUsecase interface {
	Publish(ctx context.Context, userID string, req *dto.PublishRequest, asset *model.MediaAsset) (*model.VideoRecord, error)
	History(ctx context.Context, userID string) ([]*model.VideoRecord, error)
	Platforms() []dto.PlatformCapability
}

type publishUsecase struct {
	adapters       map[model.Platform]repository.IUploadAdapter
	tokenRepo      repository.IOAuthToken
	recordRepo     repository.IVideoRecord
	historyCache   repository.IHistoryCache // optional
	adapterTimeout time.Duration
	broadcast      ProgressFunc
}

func NewPublishUsecase(
	adapters []repository.IUploadAdapter,
	tokenRepo repository.IOAuthToken,
	recordRepo repository.IVideoRecord,
	adapterTimeout time.Duration,
) *publishUsecase {
	m := make(map[model.Platform]repository.IUploadAdapter, len(adapters))
	for _, a := range adapters {
		m[a.Platform()] = a
	}
	if adapterTimeout <= 0 {
		adapterTimeout = 2 * time.Minute
	}
	return &publishUsecase{
		adapters:       m,
		tokenRepo:      tokenRepo,
		recordRepo:     recordRepo,
		adapterTimeout: adapterTimeout,
	}
}

// WithHistoryCache enables the read-through history cache (fluent).
func (u *publishUsecase) WithHistoryCache(cache repository.IHistoryCache) *publishUsecase {
	u.historyCache = cache
	return u
}

// WithBroadcaster sets the progress callback (fluent).
func (u *publishUsecase) WithBroadcaster(fn ProgressFunc) *publishUsecase {
	u.broadcast = fn
	return u
}

// Publish fans the asset out to every requested platform concurrently, waits
// for all targets to settle, then persists the finalized record. A single
// platform's failure never fails the batch; only a persistence failure after
// settlement is surfaced as an error.
func (u *publishUsecase) Publish(ctx context.Context, userID string, req *dto.PublishRequest, asset *model.MediaAsset) (*model.VideoRecord, error) {
	if userID == "" {
		return nil, errors.New("userID required")
	}
	if req == nil || req.Title == "" {
		return nil, errors.New("title required")
	}
	if asset == nil || len(asset.Content) == 0 {
		return nil, errors.New("media file required")
	}
	if len(req.Platforms) == 0 {
		return nil, errors.New("platforms required")
	}

	platforms := make([]model.Platform, 0, len(req.Platforms))
	seen := make(map[model.Platform]struct{}, len(req.Platforms))
	for _, raw := range req.Platforms {
		p, err := model.ParsePlatform(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("duplicate platform: %s", p)
		}
		if _, ok := u.adapters[p]; !ok {
			return nil, fmt.Errorf("no adapter registered for platform: %s", p)
		}
		seen[p] = struct{}{}
		platforms = append(platforms, p)
	}

	videoID := uuid.NewString()
	meta := model.UploadMetadata{
		Title:       req.Title,
		Description: req.Description,
		Hashtags:    req.Hashtags,
	}

	targets := make([]model.PublishTarget, len(platforms))
	for i, p := range platforms {
		targets[i] = model.PublishTarget{Platform: p, Status: model.StatusPending}
	}

	// All targets enter Uploading before any adapter call so the caller can
	// render a consolidated in-progress snapshot.
	for i := range targets {
		targets[i].Status = model.StatusUploading
		u.emit(userID, videoID, targets[i], "")
	}

	var (
		mu          sync.Mutex
		wg          sync.WaitGroup
		externalIDs = make(map[model.Platform]string)
	)
	for i, p := range platforms {
		wg.Add(1)
		go func(idx int, platform model.Platform) {
			defer wg.Done()
			outcome := u.uploadOne(ctx, userID, platform, asset, meta)
			mu.Lock()
			if outcome.Success {
				targets[idx].Status = model.StatusSuccess
				if outcome.ExternalID != "" {
					externalIDs[platform] = outcome.ExternalID
				}
			} else {
				targets[idx].Status = model.StatusFailed
				targets[idx].ErrorMessage = outcome.ErrorMessage
			}
			target := targets[idx]
			mu.Unlock()
			u.emit(userID, videoID, target, outcome.ExternalID)
		}(i, p)
	}
	wg.Wait()

	record := &model.VideoRecord{
		ID:              videoID,
		Title:           req.Title,
		Description:     req.Description,
		Hashtags:        req.Hashtags,
		Timestamp:       utils.GetCurrentTime(),
		PlatformTargets: targets,
	}
	if len(externalIDs) > 0 {
		record.PlatformExternalIDs = externalIDs
	}

	saved, err := u.recordRepo.Save(ctx, userID, record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecordPersist, err)
	}
	if u.historyCache != nil {
		if cErr := u.historyCache.Invalidate(ctx, userID); cErr != nil {
			logger.GetLogger().WithField("user_id", userID).WithField("error", cErr).Warn("history cache invalidation failed")
		}
	}
	return saved, nil
}

// uploadOne resolves the credential, runs the adapter under the configured
// timeout, and converts a stalled call into a Failed outcome.
func (u *publishUsecase) uploadOne(ctx context.Context, userID string, platform model.Platform, asset *model.MediaAsset, meta model.UploadMetadata) model.UploadOutcome {
	credential, err := u.tokenRepo.GetToken(ctx, userID, platform)
	if err != nil {
		logger.GetLogger().WithField("platform", platform).WithField("error", err).Warn("credential lookup failed")
		return model.UploadOutcome{ErrorMessage: "credential lookup failed"}
	}

	adapter := u.adapters[platform]
	cctx, cancel := context.WithTimeout(ctx, u.adapterTimeout)
	defer cancel()

	done := make(chan model.UploadOutcome, 1)
	go func() {
		done <- adapter.Upload(cctx, asset, meta, credential)
	}()
	select {
	case outcome := <-done:
		return outcome
	case <-cctx.Done():
		return model.UploadOutcome{ErrorMessage: fmt.Sprintf("upload to %s timed out", platform)}
	}
}

func (u *publishUsecase) emit(userID, videoID string, target model.PublishTarget, externalID string) {
	if u.broadcast != nil {
		u.broadcast(userID, videoID, target, externalID)
	}
}

// History returns the user's publish records, most recent first, preferring
// the cache when it is warm.
func (u *publishUsecase) History(ctx context.Context, userID string) ([]*model.VideoRecord, error) {
	if userID == "" {
		return nil, errors.New("userID required")
	}
	if u.historyCache != nil {
		if records, err := u.historyCache.GetHistory(ctx, userID); err == nil && records != nil {
			return records, nil
		}
	}
	records, err := u.recordRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.historyCache != nil {
		if cErr := u.historyCache.SetHistory(ctx, userID, records); cErr != nil {
			logger.GetLogger().WithField("user_id", userID).WithField("error", cErr).Warn("history cache write failed")
		}
	}
	return records, nil
}

// Platforms lists every publishable platform with its capability entry when
// one is registered.
func (u *publishUsecase) Platforms() []dto.PlatformCapability {
	out := make([]dto.PlatformCapability, 0, len(model.AllPlatforms()))
	for _, p := range model.AllPlatforms() {
		cap := dto.PlatformCapability{Platform: p}
		if spec, err := model.GetPlatformSpec(p); err == nil {
			s := spec
			cap.Spec = &s
		}
		out = append(out, cap)
	}
	return out
}
