package main

import (
	"log"
	"net/http"
	"os"

	"littlelemon-api/config"
	"littlelemon-api/middleware"
	"littlelemon-api/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	settings := config.Load()
	config.InitDB(settings)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Little Lemon Order Management API",
			"version": "1.0.0",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	throttle := middleware.NewThrottle(settings.AnonThrottle, settings.UserThrottle, settings.ThrottleWindow)

	// Register all routes
	routes.SetupRoutes(r, throttle)

	// Start server
	log.Printf("Server running on http://localhost:%s", settings.Port)
	if err := r.Run(":" + settings.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
