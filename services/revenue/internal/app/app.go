package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clipstream/pkg/config"
	"clipstream/pkg/jwt"
	"clipstream/pkg/logger"
	"clipstream/pkg/middleware"
	revenueHTTP "clipstream/services/revenue/internal/controller/http"
	"clipstream/services/revenue/internal/repo/persistent"
	"clipstream/services/revenue/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	revenueRepo := persistent.NewRevenueRepository(db)

	// Initialize use cases
	revenueUseCase := usecase.NewRevenueUseCase(revenueRepo, cfg.PayoutRatePerThousand, log)

	// Initialize HTTP handlers
	revenueHandler := revenueHTTP.NewRevenueHandler(revenueUseCase, log)

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
	api.Use(middleware.AuthMiddleware(jwtService))
	// Sanctions take effect immediately, not at token expiry.
	api.Use(middleware.RequireActiveUser(middleware.NewDBStatusSource(db)))

	{
		api.GET("/earnings", revenueHandler.GetEarnings)
		api.POST("/earnings/reconcile/:video_id", middleware.RequireRole("creator", "admin"), revenueHandler.Reconcile)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.POST("/earnings/bonus", revenueHandler.AddBonus)
		admin.POST("/earnings/simulate", revenueHandler.SimulateViews)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Revenue service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down revenue service...")

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

	log.Info("Revenue service exited")
}
