package routes

import (
	"log"
	"net/http"

	"testhub/handlers"
	"testhub/middleware"
	"testhub/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	testHandler *handlers.TestHandler,
	resultHandler *handlers.ResultHandler,
	tagHandler *handlers.TagHandler,
	authHandler *handlers.AuthHandler,
	reviewHandler *handlers.ReviewHandler,
	adminHandler *handlers.AdminHandler,
	hub *services.FeedHub,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		tests := api.Group("/tests")
		{
			tests.GET("", testHandler.ListTests)
			tests.POST("", testHandler.CreateTest)
			tests.GET("/:id", testHandler.GetTest)
			tests.PUT("/:id", testHandler.UpdateTest)
			tests.DELETE("/:id", testHandler.DeleteTest)
		}

		results := api.Group("/results")
		{
			results.POST("", resultHandler.SubmitResult)
			results.GET("", resultHandler.ListResults)
			results.GET("/:test_id", resultHandler.ListResultsByTest)
		}

		api.GET("/tags", tagHandler.ListTags)
		api.POST("/reviews", reviewHandler.AddReview)

		admin := api.Group("/admin")
		{
			admin.POST("/login", authHandler.Login)

			protected := admin.Group("/")
			protected.Use(middleware.AuthMiddleware(jwtSecret))
			{
				protected.GET("/logs", adminHandler.ListLogs)
			}
		}
	}

	// WebSocket endpoint streaming submitted results to listeners
	router.GET("/ws/results", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
			return
		}

		hub.RegisterClient(conn)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
