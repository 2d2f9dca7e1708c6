package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clipstream/pkg/cdn"
	"clipstream/pkg/config"
	"clipstream/pkg/jwt"
	"clipstream/pkg/logger"
	"clipstream/pkg/middleware"
	catalogHTTP "clipstream/services/catalog/internal/controller/http"
	"clipstream/services/catalog/internal/repo/persistent"
	"clipstream/services/catalog/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	cdnClient := cdn.NewClient(cfg)

	// Initialize repositories
	videoRepo := persistent.NewVideoRepository(db)

	// Initialize use cases
	catalogUseCase := usecase.NewCatalogUseCase(videoRepo, cdnClient, log)

	// Initialize HTTP handlers
	catalogHandler := catalogHTTP.NewCatalogHandler(catalogUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Public catalog
	{
		api.GET("/videos", catalogHandler.ListVideos)
		api.GET("/videos/search", catalogHandler.SearchVideos)
		api.GET("/videos/:id", catalogHandler.GetVideo)
	}

	// Creator surface
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	// Sanctions take effect immediately, not at token expiry.
	authed.Use(middleware.RequireActiveUser(middleware.NewDBStatusSource(db)))
	{
		authed.POST("/videos", middleware.RequireRole("creator", "admin"), catalogHandler.CreateVideo)
		authed.POST("/videos/:id/complete", catalogHandler.CompleteUpload)
		authed.DELETE("/videos/:id", catalogHandler.DeleteVideo)
		authed.GET("/creator/videos", catalogHandler.GetCreatorVideos)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Catalog service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down catalog service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Catalog service exited")
}
