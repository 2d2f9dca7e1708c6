package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

type Report struct {
	ID         string       `gorm:"type:uuid;primary_key" json:"id"`
	VideoID    string       `gorm:"type:uuid;not null;index" json:"video_id"`
	ReporterID string       `gorm:"type:uuid;not null;index" json:"reporter_id"`
	Reason     string       `gorm:"type:varchar(255);not null" json:"reason"`
	Details    string       `gorm:"type:text" json:"details"`
	Status     ReportStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ResolvedBy string       `gorm:"type:uuid" json:"resolved_by,omitempty"`
	ResolvedAt *time.Time   `json:"resolved_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`

	Video Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
