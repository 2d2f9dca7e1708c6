package repository

import (
	"time"

	"clipstream/pkg/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stats is the admin dashboard rollup.
type Stats struct {
	TotalUsers    int64           `json:"total_users"`
	TotalVideos   int64           `json:"total_videos"`
	PendingVideos int64           `json:"pending_videos"`
	TotalViews    int64           `json:"total_views"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
}

type ModerationRepository interface {
	GetVideoByID(id string) (*models.Video, error)
	GetPendingVideos(limit, offset int) ([]*models.Video, error)
	UpdateVideoStatus(id string, status models.VideoStatus) error

	CreateReport(report *models.Report) error
	GetReportByID(id string) (*models.Report, error)
	GetReports(status models.ReportStatus, limit, offset int) ([]*models.Report, error)
	ResolveReport(id, resolverID string, status models.ReportStatus) error

	GetUserByID(id string) (*models.User, error)
	SetUserStatus(id, adminID, reason string, status models.UserStatus) error

	CreateAuditLog(log *models.AuditLog) error
	GetStats() (*Stats, error)
}

type moderationRepository struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

func (r *moderationRepository) GetVideoByID(id string) (*models.Video, error) {
	var video models.Video
	if err := r.db.Where("id = ?", id).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *moderationRepository) GetPendingVideos(limit, offset int) ([]*models.Video, error) {
	var videos []*models.Video
	// Oldest first so the queue drains in submission order
	query := r.db.Where("status = ?", models.StatusPending).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *moderationRepository) UpdateVideoStatus(id string, status models.VideoStatus) error {
	return r.db.Model(&models.Video{}).Where("id = ?", id).Update("status", status).Error
}

func (r *moderationRepository) CreateReport(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *moderationRepository) GetReportByID(id string) (*models.Report, error) {
	var report models.Report
	if err := r.db.Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *moderationRepository) GetReports(status models.ReportStatus, limit, offset int) ([]*models.Report, error) {
	var reports []*models.Report
	query := r.db.Order("created_at ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *moderationRepository) ResolveReport(id, resolverID string, status models.ReportStatus) error {
	now := time.Now()
	return r.db.Model(&models.Report{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      status,
		"resolved_by": resolverID,
		"resolved_at": &now,
	}).Error
}

func (r *moderationRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *moderationRepository) SetUserStatus(id, adminID, reason string, status models.UserStatus) error {
	now := time.Now()
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":           status,
		"suspended_at":     &now,
		"suspended_reason": reason,
		"suspended_by":     adminID,
	}).Error
}

func (r *moderationRepository) CreateAuditLog(log *models.AuditLog) error {
	return r.db.Create(log).Error
}

func (r *moderationRepository) GetStats() (*Stats, error) {
	stats := &Stats{}

	if err := r.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Video{}).Count(&stats.TotalVideos).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Video{}).Where("status = ?", models.StatusPending).Count(&stats.PendingVideos).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Video{}).Select("COALESCE(SUM(views), 0)").Scan(&stats.TotalViews).Error; err != nil {
		return nil, err
	}

	var totalEarnings decimal.NullDecimal
	if err := r.db.Model(&models.Earning{}).Select("COALESCE(SUM(amount), 0)").Scan(&totalEarnings).Error; err != nil {
		return nil, err
	}
	stats.TotalEarnings = totalEarnings.Decimal

	return stats, nil
}
