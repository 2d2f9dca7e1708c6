package http

import (
	"errors"
	"net/http"
	"strconv"

	"clipstream/pkg/logger"
	"clipstream/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         *logger.Logger
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

type createVideoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// CreateVideo godoc
// @Summary      Create a video
// @Description  Registers the video with the CDN and returns the URL to upload the file to.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request body createVideoRequest true "Video metadata"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /videos [post]
func (h *CatalogHandler) CreateVideo(c *gin.Context) {
	var req createVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := c.GetString("user_id")
	video, uploadURL, err := h.catalogUseCase.CreateVideo(c.Request.Context(), userID, req.Title, req.Description, req.Category)
	if err != nil {
		h.logger.Error("Failed to create video: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"video": video, "upload_url": uploadURL})
}

// CompleteUpload godoc
// @Summary      Complete a video upload
// @Description  Checks encode status with the CDN; once encoded the video moves to the moderation queue.
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Security     BearerAuth
// @Router       /videos/{id}/complete [post]
func (h *CatalogHandler) CompleteUpload(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	video, err := h.catalogUseCase.CompleteUpload(c.Request.Context(), videoID, userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVideoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your video"})
		case errors.Is(err, usecase.ErrNotEncoded):
			c.JSON(http.StatusConflict, gin.H{"error": "Video is still encoding"})
		default:
			h.logger.Error("Failed to complete upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete upload"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"video": video})
}

// ListVideos godoc
// @Summary      List approved videos
// @Tags         videos
// @Produce      json
// @Param        category query string false "Category filter"
// @Param        limit    query int    false "Page size"
// @Param        offset   query int    false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /videos [get]
func (h *CatalogHandler) ListVideos(c *gin.Context) {
	limit, offset := pagination(c)

	videos, err := h.catalogUseCase.ListVideos(c.Query("category"), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list videos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// SearchVideos godoc
// @Summary      Search approved videos
// @Tags         videos
// @Produce      json
// @Param        q      query string true  "Search query"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /videos/search [get]
func (h *CatalogHandler) SearchVideos(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}

	limit, offset := pagination(c)
	videos, err := h.catalogUseCase.SearchVideos(query, limit, offset)
	if err != nil {
		h.logger.Error("Failed to search videos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// GetVideo godoc
// @Summary      Get an approved video
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [get]
func (h *CatalogHandler) GetVideo(c *gin.Context) {
	video, err := h.catalogUseCase.GetVideo(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		h.logger.Error("Failed to get video: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"video": video})
}

// GetCreatorVideos godoc
// @Summary      List own videos
// @Description  All of the authenticated creator's videos, any status.
// @Tags         videos
// @Produce      json
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /creator/videos [get]
func (h *CatalogHandler) GetCreatorVideos(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := pagination(c)

	videos, err := h.catalogUseCase.GetCreatorVideos(userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list creator videos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// DeleteVideo godoc
// @Summary      Delete a video
// @Description  Owner or admin only. Removes the CDN object and soft-deletes the metadata.
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /videos/{id} [delete]
func (h *CatalogHandler) DeleteVideo(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")
	role := c.GetString("role")

	if err := h.catalogUseCase.DeleteVideo(c.Request.Context(), videoID, userID, role); err != nil {
		switch {
		case errors.Is(err, usecase.ErrVideoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your video"})
		default:
			h.logger.Error("Failed to delete video: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
