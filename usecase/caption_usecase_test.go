package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crosscast/domain/dto"
	"crosscast/usecase"
)

type MockCaptionSuggester struct {
	mock.Mock
}

func (m *MockCaptionSuggester) Suggest(ctx context.Context, input dto.CaptionInput) (*dto.CaptionSuggestion, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CaptionSuggestion), args.Error(1)
}

func TestCaptionSuggest_UsesService(t *testing.T) {
	suggester := new(MockCaptionSuggester)
	suggester.On("Suggest", mock.Anything, mock.Anything).Return(&dto.CaptionSuggestion{
		Title:       "Sunset run",
		Description: "Golden hour sprint through the park.",
		Hashtags:    []string{"running", "sunset"},
	}, nil)

	u := usecase.NewCaptionUsecase(suggester)
	got := u.Suggest(context.Background(), dto.CaptionInput{Title: "run"})

	require.NotNil(t, got)
	assert.Equal(t, "Sunset run", got.Title)
	suggester.AssertExpectations(t)
}

func TestCaptionSuggest_FallsBackOnError(t *testing.T) {
	suggester := new(MockCaptionSuggester)
	suggester.On("Suggest", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

	u := usecase.NewCaptionUsecase(suggester)
	got := u.Suggest(context.Background(), dto.CaptionInput{Title: "My run", Hashtags: []string{"run"}})

	require.NotNil(t, got)
	assert.Equal(t, "My run", got.Title)
	assert.Equal(t, "Check out this video!", got.Description)
	assert.Equal(t, []string{"run"}, got.Hashtags)
}

func TestCaptionSuggest_NilSuggesterUsesDefaults(t *testing.T) {
	u := usecase.NewCaptionUsecase(nil)
	got := u.Suggest(context.Background(), dto.CaptionInput{})

	require.NotNil(t, got)
	assert.Equal(t, "My Amazing Video", got.Title)
	assert.Equal(t, "Check out this video!", got.Description)
	assert.Equal(t, []string{"viral", "trending"}, got.Hashtags)
}
