package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleViewer    UserRole = "viewer"
	RoleCreator   UserRole = "creator"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

type User struct {
	ID              string         `gorm:"type:uuid;primary_key" json:"id"`
	Email           string         `gorm:"uniqueIndex;not null" json:"email"`
	Username        string         `gorm:"uniqueIndex;not null" json:"username"`
	Password        string         `gorm:"not null" json:"-"`
	Role            UserRole       `gorm:"type:varchar(20);default:'viewer'" json:"role"`
	Status          UserStatus     `gorm:"type:varchar(20);default:'active'" json:"status"`
	SuspendedAt     *time.Time     `json:"suspended_at,omitempty"`
	SuspendedReason string         `json:"suspended_reason,omitempty"`
	SuspendedBy     string         `gorm:"type:uuid" json:"-"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
