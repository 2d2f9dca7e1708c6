package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ViewModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	VideoID   string    `gorm:"type:uuid;not null;index:idx_views_window,priority:1" json:"video_id"`
	UserID    *string   `gorm:"type:uuid" json:"user_id,omitempty"`
	IPAddress string    `gorm:"type:varchar(45);not null;index:idx_views_window,priority:2" json:"ip_address"`
	UserAgent string    `gorm:"type:varchar(500)" json:"user_agent"`
	CreatedAt time.Time `gorm:"index:idx_views_window,priority:3" json:"created_at"`
}

func (ViewModel) TableName() string {
	return "views"
}

func (v *ViewModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

type VideoModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Status    string         `gorm:"type:varchar(20)" json:"status"`
	Views     int            `gorm:"default:0" json:"views"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (VideoModel) TableName() string {
	return "videos"
}
