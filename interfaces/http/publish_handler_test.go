package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crosscast/domain/dto"
	"crosscast/domain/model"
	"crosscast/usecase"
)

type MockPublishUsecase struct {
	mock.Mock
}

func (m *MockPublishUsecase) Publish(ctx context.Context, userID string, req *dto.PublishRequest, asset *model.MediaAsset) (*model.VideoRecord, error) {
	args := m.Called(ctx, userID, req, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoRecord), args.Error(1)
}

func (m *MockPublishUsecase) History(ctx context.Context, userID string) ([]*model.VideoRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.VideoRecord), args.Error(1)
}

func (m *MockPublishUsecase) Platforms() []dto.PlatformCapability {
	args := m.Called()
	return args.Get(0).([]dto.PlatformCapability)
}

func newPublishTestRouter(u usecase.IPublishUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewPublishHandler(u)
	router.POST("/api/publish", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.Publish(c)
	})
	return router
}

func publishForm(t *testing.T, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title", "My clip"))
	require.NoError(t, writer.WriteField("platforms", "TikTok"))
	if withFile {
		part, err := writer.CreateFormFile("video", "clip.mp4")
		require.NoError(t, err)
		_, err = part.Write([]byte("video-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestPublishHandler_Success(t *testing.T) {
	u := new(MockPublishUsecase)
	u.On("Publish", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Return(&model.VideoRecord{ID: "vid-1"}, nil)

	body, contentType := publishForm(t, true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/publish", body)
	req.Header.Set("Content-Type", contentType)
	newPublishTestRouter(u).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "vid-1")
}

func TestPublishHandler_PersistenceFaultIsServerError(t *testing.T) {
	u := new(MockPublishUsecase)
	u.On("Publish", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: connection refused", usecase.ErrRecordPersist))

	body, contentType := publishForm(t, true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/publish", body)
	req.Header.Set("Content-Type", contentType)
	newPublishTestRouter(u).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPublishHandler_ValidationErrorIsBadRequest(t *testing.T) {
	u := new(MockPublishUsecase)
	u.On("Publish", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Return(nil, errors.New("duplicate platform: TikTok"))

	body, contentType := publishForm(t, true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/publish", body)
	req.Header.Set("Content-Type", contentType)
	newPublishTestRouter(u).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "duplicate platform")
}

func TestPublishHandler_MissingFile(t *testing.T) {
	u := new(MockPublishUsecase)

	body, contentType := publishForm(t, false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/publish", body)
	req.Header.Set("Content-Type", contentType)
	newPublishTestRouter(u).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	u.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
