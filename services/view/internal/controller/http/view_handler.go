package http

import (
	"errors"
	"net/http"

	"clipstream/pkg/logger"
	"clipstream/services/view/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type ViewHandler struct {
	viewUseCase usecase.ViewUseCase
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewViewHandler(viewUseCase usecase.ViewUseCase, redisClient *redis.Client, logger *logger.Logger) *ViewHandler {
	return &ViewHandler{
		viewUseCase: viewUseCase,
		redisClient: redisClient,
		logger:      logger,
	}
}

// RecordView godoc
// @Summary      Record a view
// @Description  Record one play event for an approved video. Repeat views from the same address within the dedup window return accepted=false.
// @Tags         views
// @Accept       json
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos/{id}/view [post]
func (h *ViewHandler) RecordView(c *gin.Context) {
	videoID := c.Param("id")
	ipAddress := c.ClientIP()
	userAgent := c.Request.UserAgent()

	var userID *string
	if id := c.GetString("user_id"); id != "" {
		userID = &id
	}

	accepted, err := h.viewUseCase.RecordView(videoID, ipAddress, userAgent, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found or not approved"})
			return
		}
		h.logger.Error("Failed to record view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
		return
	}

	if !accepted {
		c.JSON(http.StatusOK, gin.H{"accepted": false, "message": "View already counted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accepted": true, "message": "View recorded"})
}

// GetViewCount godoc
// @Summary      Get view count
// @Tags         views
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/views [get]
func (h *ViewHandler) GetViewCount(c *gin.Context) {
	videoID := c.Param("id")

	count, err := h.viewUseCase.GetViewCount(videoID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"video_id": videoID, "views": count})
}
