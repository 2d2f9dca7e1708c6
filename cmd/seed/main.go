package main

import (
	"fmt"

	"clipstream/pkg/config"
	"clipstream/pkg/database"
	"clipstream/pkg/logger"
	"clipstream/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		username string
		password string
		role     models.UserRole
	}{
		{"admin@test.com", "admin", "password123", models.RoleAdmin},
		{"mod@test.com", "mod", "password123", models.RoleModerator},
		{"alice@test.com", "alice_films", "password123", models.RoleCreator},
		{"bob@test.com", "bob_vlogs", "password123", models.RoleCreator},
		{"carol@test.com", "carol_watches", "password123", models.RoleViewer},
	}

	userIDs := make(map[string]string, len(testUsers))

	for _, u := range testUsers {
		var existing models.User
		err := db.Where("email = ?", u.email).First(&existing).Error
		if err == nil {
			log.Info("User %s already exists, skipping", u.email)
			userIDs[u.username] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := models.User{
			Email:    u.email,
			Username: u.username,
			Password: string(hashed),
			Role:     u.role,
			Status:   models.UserStatusActive,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.email, err)
		}
		userIDs[u.username] = user.ID
		log.Info("Created user %s (%s)", u.username, u.role)
	}

	testVideos := []struct {
		creator  string
		title    string
		category string
		status   models.VideoStatus
		views    int
	}{
		{"alice_films", "City timelapse", "travel", models.StatusApproved, 12400},
		{"alice_films", "Night market walk", "travel", models.StatusApproved, 2500},
		{"bob_vlogs", "First vlog", "lifestyle", models.StatusPending, 0},
		{"bob_vlogs", "Cooking pasta", "food", models.StatusApproved, 870},
	}

	for _, v := range testVideos {
		creatorID, ok := userIDs[v.creator]
		if !ok {
			continue
		}

		var count int64
		db.Model(&models.Video{}).Where("user_id = ? AND title = ?", creatorID, v.title).Count(&count)
		if count > 0 {
			log.Info("Video %q already exists, skipping", v.title)
			continue
		}

		video := models.Video{
			UserID:   creatorID,
			Title:    v.title,
			Category: v.category,
			Status:   v.status,
			Views:    v.views,
		}
		if err := db.Create(&video).Error; err != nil {
			return fmt.Errorf("failed to create video %q: %w", v.title, err)
		}
		log.Info("Created video %q (%s, %d views)", v.title, v.status, v.views)
	}

	return nil
}
