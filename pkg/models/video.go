package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoStatus string

const (
	// StatusProcessing covers the window between upload and CDN encode.
	StatusProcessing VideoStatus = "processing"
	StatusPending    VideoStatus = "pending"
	StatusApproved   VideoStatus = "approved"
	StatusRejected   VideoStatus = "rejected"
)

type Video struct {
	ID           string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID       string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Category     string         `gorm:"type:varchar(100);index" json:"category"`
	CDNVideoID   string         `gorm:"type:varchar(100);index" json:"cdn_video_id"`
	ThumbnailURL string         `gorm:"type:varchar(500)" json:"thumbnail_url"`
	Duration     int            `gorm:"default:0" json:"duration"`
	Status       VideoStatus    `gorm:"type:varchar(20);default:'processing'" json:"status"`
	// Denormalized counter; stays equal to count(views rows) because both are
	// written in the same transaction on every accepted view.
	Views     int            `gorm:"default:0" json:"views"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
