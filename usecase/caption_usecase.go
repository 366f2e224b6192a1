package usecase

import (
	"context"

	"crosscast/domain/dto"
	"crosscast/domain/repository"
	"crosscast/infrastructure/logger"
)

type ICaptionUsecase interface {
	Suggest(ctx context.Context, input dto.CaptionInput) *dto.CaptionSuggestion
}

type captionUsecase struct {
	suggester repository.ICaptionSuggester // nil when no API key is configured
}

func NewCaptionUsecase(suggester repository.ICaptionSuggester) ICaptionUsecase {
	return &captionUsecase{suggester: suggester}
}

// Suggest returns generated metadata, degrading to the user's own input (or
// fixed defaults) whenever the suggestion service is unavailable. It never
// fails.
func (u *captionUsecase) Suggest(ctx context.Context, input dto.CaptionInput) *dto.CaptionSuggestion {
	if u.suggester != nil {
		suggestion, err := u.suggester.Suggest(ctx, input)
		if err == nil && suggestion != nil {
			return suggestion
		}
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("caption suggestion failed, using fallback")
		}
	}
	return FallbackSuggestion(input)
}

// FallbackSuggestion echoes the input, filling gaps with fixed defaults.
func FallbackSuggestion(input dto.CaptionInput) *dto.CaptionSuggestion {
	out := &dto.CaptionSuggestion{
		Title:       input.Title,
		Description: input.Description,
		Hashtags:    input.Hashtags,
	}
	if out.Title == "" {
		out.Title = "My Amazing Video"
	}
	if out.Description == "" {
		out.Description = "Check out this video!"
	}
	if len(out.Hashtags) == 0 {
		out.Hashtags = []string{"viral", "trending"}
	}
	return out
}
