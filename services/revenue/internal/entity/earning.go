package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type VideoStatus string

const (
	StatusApproved VideoStatus = "approved"
)

type EarningStatus string

const (
	EarningConfirmed EarningStatus = "confirmed"
)

// Earning is one immutable monetization record: either a view-driven accrual
// (VideoID set, Views > 0) or a manual bonus (VideoID nil, Views 0).
type Earning struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	VideoID   *string         `json:"video_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Views     int             `json:"views"`
	Status    EarningStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type Video struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Title     string      `json:"title"`
	Status    VideoStatus `json:"status"`
	Views     int         `json:"views"`
	CreatedAt time.Time   `json:"created_at"`
}

// VideoEarnings is one row of a creator's per-video breakdown.
type VideoEarnings struct {
	VideoID       string          `json:"video_id"`
	VideoTitle    string          `json:"video_title"`
	TotalViews    int             `json:"total_views"`
	CountedViews  int             `json:"counted_views"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
}

// AccrualState pairs a video's live counter with its accrual watermark.
type AccrualState struct {
	VideoID      string `json:"video_id"`
	Views        int    `json:"views"`
	CountedViews int    `json:"counted_views"`
}

type PendingEarnings struct {
	PendingViews      int             `json:"pending_views"`
	EstimatedEarnings decimal.Decimal `json:"estimated_earnings"`
}

type EarningsSummary struct {
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	Pending       PendingEarnings `json:"pending"`
	Breakdown     []VideoEarnings `json:"breakdown"`
}

type SimulationResult struct {
	VideoID    string          `json:"video_id"`
	VideoTitle string          `json:"video_title"`
	NewViews   int             `json:"new_views"`
	Earnings   decimal.Decimal `json:"earnings"`
}
