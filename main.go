package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"realestate-server/config"
	"realestate-server/database"
	"realestate-server/middleware"
	"realestate-server/routes"
	"realestate-server/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers (must be first)
	router.Use(middleware.SecurityHeadersMiddleware())

	// Rate limiting
	router.Use(middleware.RateLimitMiddleware())

	// CORS with credentials so the session cookie survives cross-origin calls
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.Client.URL, "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Cookie"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Real Estate Server is running",
			"time":    time.Now().UTC(),
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// Auth routes (no authentication required) - with strict rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		// Listing routes (public reads, protected writes)
		postRoutes := api.Group("/posts")
		routes.RegisterPostRoutes(postRoutes)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			userRoutes := protected.Group("/users")
			routes.RegisterUserRoutes(userRoutes)

			appointmentRoutes := protected.Group("/appointments")
			routes.RegisterAppointmentRoutes(appointmentRoutes)

			contactMessageRoutes := protected.Group("/contact-messages")
			routes.RegisterContactMessageRoutes(contactMessageRoutes)
		}
	}

	// Refresh-token cleanup job
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		sessionService := services.NewSessionService()
		for range ticker.C {
			if err := sessionService.CleanupExpiredTokens(); err != nil {
				log.Printf("❌ Token cleanup failed: %v", err)
			}
		}
	}()

	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
