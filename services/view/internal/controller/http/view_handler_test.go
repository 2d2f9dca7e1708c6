package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clipstream/pkg/logger"
	"clipstream/services/view/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockViewUseCase is a mock implementation of ViewUseCase
type MockViewUseCase struct {
	mock.Mock
}

func (m *MockViewUseCase) RecordView(videoID, ipAddress, userAgent string, userID *string) (bool, error) {
	args := m.Called(videoID, ipAddress, userAgent, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockViewUseCase) GetViewCount(videoID string) (int64, error) {
	args := m.Called(videoID)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.ViewUseCase = (*MockViewUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRecordView_Accepted(t *testing.T) {
	mockUseCase := new(MockViewUseCase)
	handler := NewViewHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:id/view", handler.RecordView)

	mockUseCase.On("RecordView", "video-1", mock.Anything, mock.Anything, (*string)(nil)).Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/video-1/view", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accepted":true`)
	mockUseCase.AssertExpectations(t)
}

func TestRecordView_AlreadyCounted(t *testing.T) {
	mockUseCase := new(MockViewUseCase)
	handler := NewViewHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:id/view", handler.RecordView)

	mockUseCase.On("RecordView", "video-1", mock.Anything, mock.Anything, (*string)(nil)).Return(false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/video-1/view", nil)
	router.ServeHTTP(w, req)

	// Duplicate suppression is a 200, not an error
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accepted":false`)
	assert.Contains(t, w.Body.String(), "View already counted")
}

func TestRecordView_VideoNotFound(t *testing.T) {
	mockUseCase := new(MockViewUseCase)
	handler := NewViewHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:id/view", handler.RecordView)

	mockUseCase.On("RecordView", "missing", mock.Anything, mock.Anything, (*string)(nil)).
		Return(false, usecase.ErrVideoNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/missing/view", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordView_AuthenticatedViewer(t *testing.T) {
	mockUseCase := new(MockViewUseCase)
	handler := NewViewHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:id/view", func(c *gin.Context) {
		c.Set("user_id", "user-9")
		handler.RecordView(c)
	})

	mockUseCase.On("RecordView", "video-1", mock.Anything, mock.Anything, mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == "user-9"
	})).Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/video-1/view", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetViewCount(t *testing.T) {
	mockUseCase := new(MockViewUseCase)
	handler := NewViewHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:id/views", handler.GetViewCount)

	mockUseCase.On("GetViewCount", "video-1").Return(int64(2500), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/video-1/views", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2500")
}

func TestGetViewCount_NotFound(t *testing.T) {
	mockUseCase := new(MockViewUseCase)
	handler := NewViewHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:id/views", handler.GetViewCount)

	mockUseCase.On("GetViewCount", "missing").Return(int64(0), usecase.ErrVideoNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/missing/views", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
