package entity

import "time"

type VideoStatus string

const (
	StatusApproved VideoStatus = "approved"
)

// View is one accepted play event in the ledger.
type View struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	UserID    *string   `json:"user_id,omitempty"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// Video carries only what view tracking needs from the catalog.
type Video struct {
	ID     string      `json:"id"`
	UserID string      `json:"user_id"`
	Status VideoStatus `json:"status"`
	Views  int         `json:"views"`
}
