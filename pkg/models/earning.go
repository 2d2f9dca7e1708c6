package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EarningStatus string

const (
	EarningStatusConfirmed EarningStatus = "confirmed"
	// EarningStatusPending is part of the model but not produced by the
	// accrual engine today.
	EarningStatusPending EarningStatus = "pending"
)

// Earning credits a creator for a batch of views, or carries a manual bonus
// (VideoID nil, Views 0). Rows are immutable once written; the sum of Views
// across a video's earnings is the accrual watermark and never exceeds the
// video's recorded view count.
type Earning struct {
	ID        string          `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	VideoID   *string         `gorm:"type:uuid;index" json:"video_id,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Views     int             `gorm:"not null;default:0" json:"views"`
	Status    EarningStatus   `gorm:"type:varchar(20);default:'confirmed'" json:"status"`
	CreatedAt time.Time       `json:"created_at"`

	User  User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Video *Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (e *Earning) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// IsBonus reports whether this row was granted manually rather than accrued
// from views.
func (e *Earning) IsBonus() bool {
	return e.VideoID == nil && e.Views == 0
}
