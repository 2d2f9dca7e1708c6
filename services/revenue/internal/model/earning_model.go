package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EarningModel struct {
	ID        string          `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	VideoID   *string         `gorm:"type:uuid;index" json:"video_id,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Views     int             `gorm:"not null;default:0" json:"views"`
	Status    string          `gorm:"type:varchar(20);default:'confirmed'" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

func (EarningModel) TableName() string {
	return "earnings"
}

func (e *EarningModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

type VideoModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"type:varchar(255)" json:"title"`
	Status    string         `gorm:"type:varchar(20)" json:"status"`
	Views     int            `gorm:"default:0" json:"views"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (VideoModel) TableName() string {
	return "videos"
}

type ViewModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	VideoID   string    `gorm:"type:uuid;not null" json:"video_id"`
	UserID    *string   `gorm:"type:uuid" json:"user_id,omitempty"`
	IPAddress string    `gorm:"type:varchar(45);not null" json:"ip_address"`
	UserAgent string    `gorm:"type:varchar(500)" json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
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

type UserModel struct {
	ID       string `gorm:"type:uuid;primary_key" json:"id"`
	Username string `json:"username"`
}

func (UserModel) TableName() string {
	return "users"
}

type AuditLogModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	AdminID    string    `gorm:"type:uuid;not null" json:"admin_id"`
	Action     string    `gorm:"type:varchar(50);not null" json:"action"`
	TargetType string    `gorm:"type:varchar(20);not null" json:"target_type"`
	TargetID   string    `gorm:"type:uuid;not null" json:"target_id"`
	Reason     string    `gorm:"type:text" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}

func (a *AuditLogModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
