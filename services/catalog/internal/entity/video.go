package entity

import "time"

type VideoStatus string

const (
	StatusProcessing VideoStatus = "processing"
	StatusPending    VideoStatus = "pending"
	StatusApproved   VideoStatus = "approved"
	StatusRejected   VideoStatus = "rejected"
)

type Video struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	CDNVideoID   string      `json:"cdn_video_id"`
	ThumbnailURL string      `json:"thumbnail_url"`
	Duration     int         `json:"duration"`
	Status       VideoStatus `json:"status"`
	Views        int         `json:"views"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
