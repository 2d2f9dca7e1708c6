package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clipstream/pkg/config"
	"clipstream/pkg/database"
	"clipstream/pkg/jwt"
	"clipstream/pkg/logger"
	"clipstream/pkg/middleware"
	"clipstream/pkg/queue"
	"clipstream/services/moderation/handlers"
	"clipstream/services/moderation/repository"

	"github.com/gin-gonic/gin"
)

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

	// Moderation works without the broker; decisions just aren't fanned out.
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, moderation events disabled: %v", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)
	moderationRepo := repository.NewModerationRepository(db)
	moderationHandler := handlers.NewModerationHandler(moderationRepo, queueClient, log)

	r := gin.Default()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	// Sanctions take effect immediately, not at token expiry.
	api.Use(middleware.RequireActiveUser(middleware.NewDBStatusSource(db)))

	api.POST("/videos/:id/report", moderationHandler.CreateReport)

	mod := api.Group("/moderation")
	mod.Use(middleware.RequireRole("moderator", "admin"))
	{
		mod.GET("/videos/pending", moderationHandler.GetPendingVideos)
		mod.POST("/videos/:id/approve", moderationHandler.ApproveVideo)
		mod.POST("/videos/:id/reject", moderationHandler.RejectVideo)
		mod.GET("/reports", moderationHandler.GetReports)
		mod.POST("/reports/:id/resolve", moderationHandler.ResolveReport)
	}

	admin := api.Group("/moderation")
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.POST("/users/:id/suspend", moderationHandler.SuspendUser)
		admin.POST("/users/:id/ban", moderationHandler.BanUser)
		admin.GET("/stats", moderationHandler.GetStats)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Moderation service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down moderation service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close queue connection
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Moderation service exited")
}
