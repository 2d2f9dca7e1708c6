package http

import (
	"errors"
	"net/http"

	"clipstream/pkg/logger"
	"clipstream/services/revenue/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RevenueHandler struct {
	revenueUseCase usecase.RevenueUseCase
	logger         *logger.Logger
}

func NewRevenueHandler(revenueUseCase usecase.RevenueUseCase, logger *logger.Logger) *RevenueHandler {
	return &RevenueHandler{
		revenueUseCase: revenueUseCase,
		logger:         logger,
	}
}

type bonusRequest struct {
	UserID string          `json:"user_id" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type simulateRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ViewCount int    `json:"view_count" binding:"required"`
}

// Reconcile godoc
// @Summary      Reconcile video earnings
// @Description  Convert a video's unmonetized views into a new earning row. Views accrue in whole thousands; repeat calls with no new views are no-ops.
// @Tags         earnings
// @Produce      json
// @Param        video_id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Security     BearerAuth
// @Router       /earnings/reconcile/{video_id} [post]
func (h *RevenueHandler) Reconcile(c *gin.Context) {
	videoID := c.Param("video_id")

	earning, err := h.revenueUseCase.Reconcile(videoID)
	if err != nil {
		if errors.Is(err, usecase.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		h.logger.Error("Failed to reconcile video %s: %v", videoID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile earnings"})
		return
	}

	if earning == nil {
		c.JSON(http.StatusOK, gin.H{"accrued": false, "message": "Nothing to accrue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accrued": true, "earning": earning})
}

// GetEarnings godoc
// @Summary      Get earnings summary
// @Description  Total confirmed earnings, per-video breakdown, and an estimate for views not yet monetized.
// @Tags         earnings
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Security     BearerAuth
// @Router       /earnings [get]
func (h *RevenueHandler) GetEarnings(c *gin.Context) {
	userID := c.GetString("user_id")

	summary, err := h.revenueUseCase.GetEarnings(userID)
	if err != nil {
		h.logger.Error("Failed to get earnings for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get earnings"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// AddBonus godoc
// @Summary      Grant a bonus earning
// @Description  Admin tool. Credits a user with a manual earning not tied to any video.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body bonusRequest true "Bonus details"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /admin/earnings/bonus [post]
func (h *RevenueHandler) AddBonus(c *gin.Context) {
	var req bonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	adminID := c.GetString("user_id")
	earning, err := h.revenueUseCase.AddBonus(adminID, req.UserID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			h.logger.Error("Failed to add bonus: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add bonus"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"earning": earning})
}

// SimulateViews godoc
// @Summary      Simulate views
// @Description  Admin tool. Injects synthetic views against the user's newest approved video and credits earnings for the full count.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body simulateRequest true "Simulation details"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /admin/earnings/simulate [post]
func (h *RevenueHandler) SimulateViews(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	adminID := c.GetString("user_id")
	result, err := h.revenueUseCase.SimulateViews(adminID, req.UserID, req.ViewCount)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "View count must be positive"})
		case errors.Is(err, usecase.ErrNoApprovedVideo):
			c.JSON(http.StatusNotFound, gin.H{"error": "User has no approved videos"})
		default:
			h.logger.Error("Failed to simulate views: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to simulate views"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
