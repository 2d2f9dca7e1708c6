package entity

import "time"

// View mirrors the ledger row shape for the simulation path; production view
// tracking lives in the view service.
type View struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	UserID    *string   `json:"user_id,omitempty"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
