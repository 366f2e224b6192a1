package repository

import (
	"context"

	"crosscast/domain/dto"
)

// ICaptionSuggester generates video metadata suggestions. Callers must treat
// any error as "service unavailable" and fall back to the user's own input.
type ICaptionSuggester interface {
	Suggest(ctx context.Context, input dto.CaptionInput) (*dto.CaptionSuggestion, error)
}
