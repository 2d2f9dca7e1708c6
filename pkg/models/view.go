package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// View is one recorded play event. Rows are append-only: never updated, never
// deleted except by cascade when the parent video goes away. Deduplication is
// a time-window policy applied before insert, not a uniqueness constraint.
type View struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	VideoID   string    `gorm:"type:uuid;not null;index:idx_views_window,priority:1" json:"video_id"`
	UserID    *string   `gorm:"type:uuid" json:"user_id,omitempty"`
	IPAddress string    `gorm:"type:varchar(45);not null;index:idx_views_window,priority:2" json:"ip_address"`
	UserAgent string    `gorm:"type:varchar(500)" json:"user_agent"`
	CreatedAt time.Time `gorm:"index:idx_views_window,priority:3" json:"created_at"`

	Video Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (v *View) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
