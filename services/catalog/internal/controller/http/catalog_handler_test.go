package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipstream/pkg/logger"
	"clipstream/services/catalog/internal/entity"
	"clipstream/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUseCase is a mock implementation of CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) CreateVideo(ctx context.Context, userID, title, description, category string) (*entity.Video, string, error) {
	args := m.Called(ctx, userID, title, description, category)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.Video), args.String(1), args.Error(2)
}

func (m *MockCatalogUseCase) CompleteUpload(ctx context.Context, videoID, userID string) (*entity.Video, error) {
	args := m.Called(ctx, videoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockCatalogUseCase) ListVideos(category string, limit, offset int) ([]*entity.Video, error) {
	args := m.Called(category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockCatalogUseCase) SearchVideos(query string, limit, offset int) ([]*entity.Video, error) {
	args := m.Called(query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockCatalogUseCase) GetVideo(videoID string) (*entity.Video, error) {
	args := m.Called(videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockCatalogUseCase) GetCreatorVideos(creatorID string, limit, offset int) ([]*entity.Video, error) {
	args := m.Called(creatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteVideo(ctx context.Context, videoID, userID, role string) error {
	args := m.Called(ctx, videoID, userID, role)
	return args.Error(0)
}

var _ usecase.CatalogUseCase = (*MockCatalogUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func TestCreateVideo(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/videos", asUser("creator-1", "creator"), handler.CreateVideo)

	mockUseCase.On("CreateVideo", mock.Anything, "creator-1", "My clip", "desc", "music").
		Return(&entity.Video{ID: "video-1", Status: entity.StatusProcessing}, "https://cdn.example/upload", nil)

	body := bytes.NewBufferString(`{"title": "My clip", "description": "desc", "category": "music"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"upload_url":"https://cdn.example/upload"`)
	mockUseCase.AssertExpectations(t)
}

func TestCreateVideo_MissingTitle(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/videos", asUser("creator-1", "creator"), handler.CreateVideo)

	body := bytes.NewBufferString(`{"description": "no title"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateVideo")
}

func TestCompleteUpload_StillEncoding(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:id/complete", asUser("creator-1", "creator"), handler.CompleteUpload)

	mockUseCase.On("CompleteUpload", mock.Anything, "video-1", "creator-1").Return(nil, usecase.ErrNotEncoded)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/video-1/complete", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetVideo_NotFound(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:id", handler.GetVideo)

	mockUseCase.On("GetVideo", "missing").Return(nil, usecase.ErrVideoNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchVideos_RequiresQuery(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/search", handler.SearchVideos)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/search", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "SearchVideos")
}

func TestDeleteVideo_Forbidden(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/videos/:id", asUser("stranger", "viewer"), handler.DeleteVideo)

	mockUseCase.On("DeleteVideo", mock.Anything, "video-1", "stranger", "viewer").Return(usecase.ErrNotOwner)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/videos/video-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
