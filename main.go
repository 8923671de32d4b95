package main

import (
	"log"
	"net/http"

	"github.com/Raphaelsozua/dish-domain-db/config"
	"github.com/Raphaelsozua/dish-domain-db/middleware"
	"github.com/Raphaelsozua/dish-domain-db/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database and provision the seed tenant (if configured)
	config.InitDB(cfg.DBSource)
	if err := config.SeedTenant(); err != nil {
		log.Fatal("Failed to seed tenant:", err)
	}

	// Gin with default middleware (logger + recovery)
	r := gin.Default()

	// CORS for the menu front end
	r.Use(middleware.CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Digital Menu Platform API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍽️ Welcome to the Digital Menu Platform API",
			"public":  "/api/public/:slug/menu",
			"health":  "/health",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
