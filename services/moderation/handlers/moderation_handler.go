package handlers

import (
	"net/http"
	"strconv"
	"time"

	"clipstream/pkg/logger"
	"clipstream/pkg/models"
	"clipstream/pkg/queue"
	"clipstream/services/moderation/repository"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationRepo repository.ModerationRepository
	queueClient    *queue.Client
	logger         *logger.Logger
}

func NewModerationHandler(moderationRepo repository.ModerationRepository, queueClient *queue.Client, logger *logger.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationRepo: moderationRepo,
		queueClient:    queueClient,
		logger:         logger,
	}
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ReportRequest struct {
	Reason  string `json:"reason" binding:"required"`
	Details string `json:"details"`
}

type ResolveRequest struct {
	Action string `json:"action" binding:"required,oneof=resolve dismiss"`
}

type UserActionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *ModerationHandler) GetPendingVideos(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	videos, err := h.moderationRepo.GetPendingVideos(limit, offset)
	if err != nil {
		h.logger.Error("Failed to get pending videos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pending videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}

func (h *ModerationHandler) ApproveVideo(c *gin.Context) {
	videoID := c.Param("id")
	adminID := c.GetString("user_id")

	video, err := h.moderationRepo.GetVideoByID(videoID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	if video.Status != models.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Video is not awaiting moderation"})
		return
	}

	if err := h.moderationRepo.UpdateVideoStatus(videoID, models.StatusApproved); err != nil {
		h.logger.Error("Failed to approve video %s: %v", videoID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve video"})
		return
	}

	h.audit(adminID, models.AuditVideoApproved, "video", videoID, "")
	h.publishDecision(queue.ModerationEvent{
		Type:    "video_approved",
		VideoID: videoID,
		UserID:  video.UserID,
		AdminID: adminID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Video approved", "video_id": videoID})
}

func (h *ModerationHandler) RejectVideo(c *gin.Context) {
	videoID := c.Param("id")
	adminID := c.GetString("user_id")

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rejection reason is required"})
		return
	}

	video, err := h.moderationRepo.GetVideoByID(videoID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	if video.Status != models.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Video is not awaiting moderation"})
		return
	}

	if err := h.moderationRepo.UpdateVideoStatus(videoID, models.StatusRejected); err != nil {
		h.logger.Error("Failed to reject video %s: %v", videoID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject video"})
		return
	}

	h.audit(adminID, models.AuditVideoRejected, "video", videoID, req.Reason)
	h.publishDecision(queue.ModerationEvent{
		Type:    "video_rejected",
		VideoID: videoID,
		UserID:  video.UserID,
		AdminID: adminID,
		Reason:  req.Reason,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Video rejected", "video_id": videoID})
}

func (h *ModerationHandler) CreateReport(c *gin.Context) {
	videoID := c.Param("id")
	reporterID := c.GetString("user_id")

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Report reason is required"})
		return
	}

	if _, err := h.moderationRepo.GetVideoByID(videoID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}

	report := &models.Report{
		VideoID:    videoID,
		ReporterID: reporterID,
		Reason:     req.Reason,
		Details:    req.Details,
		Status:     models.ReportStatusPending,
	}
	if err := h.moderationRepo.CreateReport(report); err != nil {
		h.logger.Error("Failed to create report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report": report})
}

func (h *ModerationHandler) GetReports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	status := models.ReportStatus(c.DefaultQuery("status", "pending"))

	reports, err := h.moderationRepo.GetReports(status, limit, offset)
	if err != nil {
		h.logger.Error("Failed to get reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

func (h *ModerationHandler) ResolveReport(c *gin.Context) {
	reportID := c.Param("id")
	resolverID := c.GetString("user_id")

	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action must be resolve or dismiss"})
		return
	}

	report, err := h.moderationRepo.GetReportByID(reportID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if report.Status != models.ReportStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Report already handled"})
		return
	}

	status := models.ReportStatusResolved
	auditAction := models.AuditReportResolved
	if req.Action == "dismiss" {
		status = models.ReportStatusDismissed
		auditAction = models.AuditReportDismissed
	}

	if err := h.moderationRepo.ResolveReport(reportID, resolverID, status); err != nil {
		h.logger.Error("Failed to resolve report %s: %v", reportID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve report"})
		return
	}

	h.audit(resolverID, auditAction, "report", reportID, "")
	c.JSON(http.StatusOK, gin.H{"message": "Report " + string(status), "report_id": reportID})
}

func (h *ModerationHandler) SuspendUser(c *gin.Context) {
	h.setUserStatus(c, models.UserStatusSuspended, models.AuditUserSuspended, "user_suspended")
}

func (h *ModerationHandler) BanUser(c *gin.Context) {
	h.setUserStatus(c, models.UserStatusBanned, models.AuditUserBanned, "user_banned")
}

func (h *ModerationHandler) setUserStatus(c *gin.Context, status models.UserStatus, auditAction, eventType string) {
	userID := c.Param("id")
	adminID := c.GetString("user_id")

	var req UserActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reason is required"})
		return
	}

	user, err := h.moderationRepo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.Role == models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin accounts cannot be sanctioned"})
		return
	}

	if err := h.moderationRepo.SetUserStatus(userID, adminID, req.Reason, status); err != nil {
		h.logger.Error("Failed to set user %s status: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	h.audit(adminID, auditAction, "user", userID, req.Reason)
	h.publishDecision(queue.ModerationEvent{
		Type:    eventType,
		UserID:  userID,
		AdminID: adminID,
		Reason:  req.Reason,
	})

	c.JSON(http.StatusOK, gin.H{"message": "User " + string(status), "user_id": userID})
}

func (h *ModerationHandler) GetStats(c *gin.Context) {
	stats, err := h.moderationRepo.GetStats()
	if err != nil {
		h.logger.Error("Failed to get stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ModerationHandler) audit(adminID, action, targetType, targetID, reason string) {
	entry := &models.AuditLog{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Reason:     reason,
	}
	if err := h.moderationRepo.CreateAuditLog(entry); err != nil {
		h.logger.Error("Failed to write audit log: %v", err)
	}
}

// publishDecision is best-effort; a down broker never blocks moderation.
func (h *ModerationHandler) publishDecision(event queue.ModerationEvent) {
	if h.queueClient == nil {
		return
	}
	event.Timestamp = time.Now()
	if err := h.queueClient.PublishModerationEvent(event); err != nil {
		h.logger.Error("Failed to publish moderation event: %v", err)
	}
}
