package youtube

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	youtubeapi "google.golang.org/api/youtube/v3"

	"crosscast/domain/model"
)

type fakeInserter struct {
	calls   int
	results []insertResult
	videos  []*youtubeapi.Video
	tokens  []string
}

type insertResult struct {
	video *youtubeapi.Video
	err   error
}

func (f *fakeInserter) insert(token string) func(ctx context.Context, video *youtubeapi.Video, asset *model.MediaAsset) (*youtubeapi.Video, error) {
	return func(ctx context.Context, video *youtubeapi.Video, asset *model.MediaAsset) (*youtubeapi.Video, error) {
		f.tokens = append(f.tokens, token)
		f.videos = append(f.videos, video)
		result := f.results[f.calls]
		f.calls++
		return result.video, result.err
	}
}

type inserterFn func(ctx context.Context, video *youtubeapi.Video, asset *model.MediaAsset) (*youtubeapi.Video, error)

func (fn inserterFn) Insert(ctx context.Context, video *youtubeapi.Video, asset *model.MediaAsset) (*youtubeapi.Video, error) {
	return fn(ctx, video, asset)
}

type fakeRefresher struct {
	calls int
	token *model.OAuthToken
	err   error
}

func (f *fakeRefresher) Refresh(ctx context.Context, userID string, platform model.Platform, refreshToken string) (*model.OAuthToken, error) {
	f.calls++
	return f.token, f.err
}

func newTestUploader(inserter *fakeInserter, refresher *fakeRefresher) *Uploader {
	return &Uploader{
		refresher: refresher,
		newInserter: func(ctx context.Context, accessToken string) (videoInserter, error) {
			return inserterFn(inserter.insert(accessToken)), nil
		},
	}
}

func asset() *model.MediaAsset {
	return &model.MediaAsset{Content: []byte("video-bytes"), MimeType: "video/mp4", Filename: "clip.mp4"}
}

func credential() *model.OAuthToken {
	return &model.OAuthToken{
		UserID:       "user-1",
		Platform:     model.PlatformYouTube,
		AccessToken:  "stale-token",
		RefreshToken: "refresh-token",
	}
}

func TestUpload_MissingCredentialMakesNoAPICall(t *testing.T) {
	inserter := &fakeInserter{}
	refresher := &fakeRefresher{}
	u := newTestUploader(inserter, refresher)

	outcome := u.Upload(context.Background(), asset(), model.UploadMetadata{Title: "t"}, nil)

	assert.False(t, outcome.Success)
	assert.Equal(t, "YouTube account not connected", outcome.ErrorMessage)
	assert.Zero(t, inserter.calls)
	assert.Zero(t, refresher.calls)
}

func TestUpload_Success(t *testing.T) {
	inserter := &fakeInserter{results: []insertResult{{video: &youtubeapi.Video{Id: "yt123"}}}}
	refresher := &fakeRefresher{}
	u := newTestUploader(inserter, refresher)

	outcome := u.Upload(context.Background(), asset(), model.UploadMetadata{Title: "t"}, credential())

	assert.True(t, outcome.Success)
	assert.Equal(t, "yt123", outcome.ExternalID)
	assert.Equal(t, 1, inserter.calls)
	assert.Zero(t, refresher.calls)
}

func TestUpload_AuthErrorRefreshesOnceAndRetries(t *testing.T) {
	inserter := &fakeInserter{results: []insertResult{
		{err: &googleapi.Error{Code: 401, Message: "Invalid Credentials"}},
		{video: &youtubeapi.Video{Id: "yt456"}},
	}}
	refresher := &fakeRefresher{token: &model.OAuthToken{AccessToken: "fresh-token"}}
	u := newTestUploader(inserter, refresher)

	outcome := u.Upload(context.Background(), asset(), model.UploadMetadata{Title: "t"}, credential())

	assert.True(t, outcome.Success)
	assert.Equal(t, "yt456", outcome.ExternalID)
	assert.Equal(t, 1, refresher.calls)
	assert.Equal(t, 2, inserter.calls)
	assert.Equal(t, []string{"stale-token", "fresh-token"}, inserter.tokens)
}

func TestUpload_SecondAuthFailureIsFinal(t *testing.T) {
	inserter := &fakeInserter{results: []insertResult{
		{err: &googleapi.Error{Code: 401}},
		{err: &googleapi.Error{Code: 401}},
	}}
	refresher := &fakeRefresher{token: &model.OAuthToken{AccessToken: "fresh-token"}}
	u := newTestUploader(inserter, refresher)

	outcome := u.Upload(context.Background(), asset(), model.UploadMetadata{Title: "t"}, credential())

	assert.False(t, outcome.Success)
	assert.Equal(t, 1, refresher.calls, "must refresh exactly once")
	assert.Equal(t, 2, inserter.calls, "must retry exactly once")
}

func TestUpload_NonAuthErrorDoesNotRefresh(t *testing.T) {
	inserter := &fakeInserter{results: []insertResult{
		{err: &googleapi.Error{Code: 403, Message: "quotaExceeded"}},
	}}
	refresher := &fakeRefresher{}
	u := newTestUploader(inserter, refresher)

	outcome := u.Upload(context.Background(), asset(), model.UploadMetadata{Title: "t"}, credential())

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.ErrorMessage, "quotaExceeded")
	assert.Zero(t, refresher.calls)
	assert.Equal(t, 1, inserter.calls)
}

func TestUpload_NoRefreshTokenSkipsRetry(t *testing.T) {
	inserter := &fakeInserter{results: []insertResult{
		{err: &googleapi.Error{Code: 401}},
	}}
	refresher := &fakeRefresher{}
	u := newTestUploader(inserter, refresher)

	cred := credential()
	cred.RefreshToken = ""
	outcome := u.Upload(context.Background(), asset(), model.UploadMetadata{Title: "t"}, cred)

	assert.False(t, outcome.Success)
	assert.Equal(t, "YouTube authorization expired, please reconnect", outcome.ErrorMessage)
	assert.Zero(t, refresher.calls)
}

func TestBuildVideo_DescriptionCombinesTextAndHashtags(t *testing.T) {
	video := buildVideo(model.UploadMetadata{
		Title:       "My clip",
		Description: "A great day",
		Hashtags:    []string{"viral", "#fun"},
	})

	assert.Equal(t, "My clip", video.Snippet.Title)
	assert.Equal(t, "A great day\n\n#viral #fun", video.Snippet.Description)
	assert.Equal(t, []string{"viral", "#fun"}, video.Snippet.Tags)
	assert.Equal(t, "22", video.Snippet.CategoryId)
	assert.Equal(t, "public", video.Status.PrivacyStatus)
	assert.False(t, video.Status.SelfDeclaredMadeForKids)
	assert.Contains(t, video.Status.ForceSendFields, "SelfDeclaredMadeForKids")
}

func TestBuildVideo_TruncatesAndCapsTags(t *testing.T) {
	longTitle := strings.Repeat("a", 150)
	longDescription := strings.Repeat("b", 6000)
	manyTags := make([]string, 15)
	for i := range manyTags {
		manyTags[i] = "tag"
	}

	video := buildVideo(model.UploadMetadata{
		Title:       longTitle,
		Description: longDescription,
		Hashtags:    manyTags,
	})

	require.Len(t, video.Snippet.Title, 100)
	require.Len(t, video.Snippet.Description, 5000)
	require.Len(t, video.Snippet.Tags, 10)
}

func TestBuildVideo_TruncatesByCharacterNotByte(t *testing.T) {
	// 40 three-byte runes: 120 bytes but only 40 characters, under the limit.
	shortMultibyte := strings.Repeat("€", 40)
	video := buildVideo(model.UploadMetadata{Title: shortMultibyte})
	assert.Equal(t, shortMultibyte, video.Snippet.Title)

	longMultibyte := strings.Repeat("€", 130)
	video = buildVideo(model.UploadMetadata{
		Title:       longMultibyte,
		Description: strings.Repeat("日", 5100),
	})
	assert.Equal(t, 100, utf8.RuneCountInString(video.Snippet.Title))
	assert.True(t, utf8.ValidString(video.Snippet.Title))
	assert.Equal(t, 5000, utf8.RuneCountInString(video.Snippet.Description))
	assert.True(t, utf8.ValidString(video.Snippet.Description))
}

func TestBuildVideo_NoHashtagsKeepsDescriptionPlain(t *testing.T) {
	video := buildVideo(model.UploadMetadata{Title: "t", Description: "plain"})
	assert.Equal(t, "plain", video.Snippet.Description)
}
