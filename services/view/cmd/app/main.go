package main

import (
	"clipstream/pkg/cache"
	"clipstream/pkg/config"
	"clipstream/pkg/database"
	"clipstream/pkg/logger"
	app "clipstream/services/view/internal/app"
)

// @title           View Service API
// @version         1.0
// @description     View tracking and duplicate suppression for the Clipstream platform
// @host      localhost:8002
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, redisClient)
}
