package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/surveydisco-ai/backend/api/v1"
	"github.com/surveydisco-ai/backend/config"
	"github.com/surveydisco-ai/backend/database"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Connect to PostgreSQL and run migrations
	database.Initialize()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register versioned API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("🚀 SurveyDisco API starting on port %s", port)
	log.Printf("📍 Home base: %s", config.HomeBaseAddress())
	log.Printf("🤖 LLM extraction: %s", func() string {
		if os.Getenv("OPENAI_API_KEY") != "" {
			return "Enabled"
		}
		return "Disabled (regex fallback only)"
	}())
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
