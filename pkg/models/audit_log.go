package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditVideoApproved   = "VIDEO_APPROVED"
	AuditVideoRejected   = "VIDEO_REJECTED"
	AuditUserSuspended   = "USER_SUSPENDED"
	AuditUserBanned      = "USER_BANNED"
	AuditReportResolved  = "REPORT_RESOLVED"
	AuditReportDismissed = "REPORT_DISMISSED"
	AuditEarningsBonus   = "EARNINGS_BONUS"
	AuditViewsSimulated  = "VIEWS_SIMULATED"
)

type AuditLog struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	AdminID    string    `gorm:"type:uuid;not null;index" json:"admin_id"`
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	TargetType string    `gorm:"type:varchar(20);not null" json:"target_type"`
	TargetID   string    `gorm:"type:uuid;not null" json:"target_id"`
	Reason     string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
