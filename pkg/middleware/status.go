package middleware

import (
	"errors"
	"net/http"

	"clipstream/pkg/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserStatusSource reports a user's account status. *gorm.DB-backed in
// production; tests substitute a fake.
type UserStatusSource interface {
	GetUserStatus(userID string) (models.UserStatus, error)
}

type dbStatusSource struct {
	db *gorm.DB
}

func NewDBStatusSource(db *gorm.DB) UserStatusSource {
	return &dbStatusSource{db: db}
}

func (s *dbStatusSource) GetUserStatus(userID string) (models.UserStatus, error) {
	var user models.User
	if err := s.db.Select("status").Where("id = ?", userID).First(&user).Error; err != nil {
		return "", err
	}
	return user.Status, nil
}

// RequireActiveUser rejects suspended and banned accounts. Tokens outlive
// sanctions by up to their 24h expiry, so the status is read from storage on
// every request rather than trusted from the claim set. Runs after
// AuthMiddleware; requests without an identity pass through untouched.
func RequireActiveUser(source UserStatusSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}

		status, err := source.GetUserStatus(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify account"})
			}
			c.Abort()
			return
		}

		if status != models.UserStatusActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is " + string(status)})
			c.Abort()
			return
		}

		c.Next()
	}
}
