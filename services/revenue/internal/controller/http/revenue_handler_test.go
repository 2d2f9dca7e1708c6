package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipstream/pkg/logger"
	"clipstream/services/revenue/internal/entity"
	"clipstream/services/revenue/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRevenueUseCase is a mock implementation of RevenueUseCase
type MockRevenueUseCase struct {
	mock.Mock
}

func (m *MockRevenueUseCase) Reconcile(videoID string) (*entity.Earning, error) {
	args := m.Called(videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Earning), args.Error(1)
}

func (m *MockRevenueUseCase) GetEarnings(userID string) (*entity.EarningsSummary, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EarningsSummary), args.Error(1)
}

func (m *MockRevenueUseCase) AddBonus(adminID, userID string, amount decimal.Decimal) (*entity.Earning, error) {
	args := m.Called(adminID, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Earning), args.Error(1)
}

func (m *MockRevenueUseCase) SimulateViews(adminID, userID string, viewCount int) (*entity.SimulationResult, error) {
	args := m.Called(adminID, userID, viewCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SimulationResult), args.Error(1)
}

var _ usecase.RevenueUseCase = (*MockRevenueUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestReconcile_Accrued(t *testing.T) {
	mockUseCase := new(MockRevenueUseCase)
	handler := NewRevenueHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/earnings/reconcile/:video_id", handler.Reconcile)

	videoID := "video-1"
	mockUseCase.On("Reconcile", "video-1").Return(&entity.Earning{
		UserID:  "creator-1",
		VideoID: &videoID,
		Amount:  decimal.RequireFromString("60"),
		Views:   12000,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/earnings/reconcile/video-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accrued":true`)
	assert.Contains(t, w.Body.String(), `"views":12000`)
	mockUseCase.AssertExpectations(t)
}

func TestReconcile_NothingToAccrue(t *testing.T) {
	mockUseCase := new(MockRevenueUseCase)
	handler := NewRevenueHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/earnings/reconcile/:video_id", handler.Reconcile)

	mockUseCase.On("Reconcile", "video-1").Return(nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/earnings/reconcile/video-1", nil)
	router.ServeHTTP(w, req)

	// A no-op reconcile is still a success
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accrued":false`)
}

func TestReconcile_VideoNotFound(t *testing.T) {
	mockUseCase := new(MockRevenueUseCase)
	handler := NewRevenueHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/earnings/reconcile/:video_id", handler.Reconcile)

	mockUseCase.On("Reconcile", "missing").Return(nil, usecase.ErrVideoNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/earnings/reconcile/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetEarnings(t *testing.T) {
	mockUseCase := new(MockRevenueUseCase)
	handler := NewRevenueHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/earnings", asUser("creator-1"), handler.GetEarnings)

	mockUseCase.On("GetEarnings", "creator-1").Return(&entity.EarningsSummary{
		TotalEarnings: decimal.RequireFromString("40.50"),
		Pending: entity.PendingEarnings{
			PendingViews:      400,
			EstimatedEarnings: decimal.Zero,
		},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/earnings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_earnings":"40.5"`)
	assert.Contains(t, w.Body.String(), `"pending_views":400`)
}

func TestAddBonus(t *testing.T) {
	mockUseCase := new(MockRevenueUseCase)
	handler := NewRevenueHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/earnings/bonus", asUser("admin-1"), handler.AddBonus)

	amount := decimal.RequireFromString("25.50")
	mockUseCase.On("AddBonus", "admin-1", "creator-1", amount).Return(&entity.Earning{
		UserID: "creator-1",
		Amount: amount,
	}, nil)

	body := bytes.NewBufferString(`{"user_id": "creator-1", "amount": 25.50}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/earnings/bonus", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAddBonus_InvalidAmount(t *testing.T) {
	mockUseCase := new(MockRevenueUseCase)
	handler := NewRevenueHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/earnings/bonus", asUser("admin-1"), handler.AddBonus)

	mockUseCase.On("AddBonus", "admin-1", "creator-1", mock.Anything).Return(nil, usecase.ErrInvalidAmount)

	body := bytes.NewBufferString(`{"user_id": "creator-1", "amount": -5}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/earnings/bonus", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddBonus_UserNotFound(t *testing.T) {
	mockUseCase := new(MockRevenueUseCase)
	handler := NewRevenueHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/earnings/bonus", asUser("admin-1"), handler.AddBonus)

	mockUseCase.On("AddBonus", "admin-1", "ghost", mock.Anything).Return(nil, usecase.ErrUserNotFound)

	body := bytes.NewBufferString(`{"user_id": "ghost", "amount": 10}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/earnings/bonus", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddBonus_MalformedBody(t *testing.T) {
	mockUseCase := new(MockRevenueUseCase)
	handler := NewRevenueHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/earnings/bonus", asUser("admin-1"), handler.AddBonus)

	body := bytes.NewBufferString(`{"amount": 10}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/earnings/bonus", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "AddBonus")
}

func TestSimulateViews(t *testing.T) {
	mockUseCase := new(MockRevenueUseCase)
	handler := NewRevenueHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/earnings/simulate", asUser("admin-1"), handler.SimulateViews)

	mockUseCase.On("SimulateViews", "admin-1", "creator-1", 2500).Return(&entity.SimulationResult{
		VideoID:  "video-1",
		NewViews: 2500,
		Earnings: decimal.RequireFromString("12.5"),
	}, nil)

	body := bytes.NewBufferString(`{"user_id": "creator-1", "view_count": 2500}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/earnings/simulate", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"new_views":2500`)
	mockUseCase.AssertExpectations(t)
}

func TestSimulateViews_NoApprovedVideo(t *testing.T) {
	mockUseCase := new(MockRevenueUseCase)
	handler := NewRevenueHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/earnings/simulate", asUser("admin-1"), handler.SimulateViews)

	mockUseCase.On("SimulateViews", "admin-1", "creator-1", 1000).Return(nil, usecase.ErrNoApprovedVideo)

	body := bytes.NewBufferString(`{"user_id": "creator-1", "view_count": 1000}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/earnings/simulate", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
