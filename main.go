package main

import (
	"log"
	"time"

	"testhub/config"
	"testhub/handlers"
	"testhub/middleware"
	"testhub/models"
	"testhub/routes"
	"testhub/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Route tag association writes through the explicit join model
	if err := db.SetupJoinTable(&models.Test{}, "Tags", &models.TestTag{}); err != nil {
		log.Fatal("Failed to set up join table:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Test{},
		&models.Question{},
		&models.Tag{},
		&models.TestTag{},
		&models.Result{},
		&models.Review{},
		&models.AdminLog{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis-backed read cache
	redisClient := config.InitRedis(cfg)
	cache := services.NewCache(redisClient, 5*time.Minute)

	// Initialize services
	testService := services.NewTestService(db, cache)
	resultService := services.NewResultService(db)
	tagService := services.NewTagService(db, cache)
	reviewService := services.NewReviewService(db, cache)
	authService := services.NewAuthService(db, cfg.JWTSecret)
	adminLogService := services.NewAdminLogService(db)

	// Initialize result feed hub
	hub := services.NewFeedHub()
	go hub.Run()

	// Initialize handlers
	testHandler := handlers.NewTestHandler(testService)
	resultHandler := handlers.NewResultHandler(resultService, hub)
	tagHandler := handlers.NewTagHandler(tagService)
	authHandler := handlers.NewAuthHandler(authService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	adminHandler := handlers.NewAdminHandler(adminLogService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, testHandler, resultHandler, tagHandler, authHandler, reviewHandler, adminHandler, hub, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
