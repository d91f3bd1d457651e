package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/config"
	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/handler"
	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/repository"
	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("AI Travel Assistant")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize the property store backend
	store, err := newPropertyStore(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to property store: %v", err)
	}
	defer store.Close()

	log.Printf("✅ Connected to %s property store", cfg.Store.Backend)

	// Initialize Ollama client
	ollamaClient := service.NewOllamaClient(&cfg.Ollama)
	log.Printf("✅ Ollama client initialized")
	log.Printf("   - URL: %s", cfg.Ollama.URL)
	log.Printf("   - Model: %s", cfg.Ollama.Model)
	log.Printf("   - Temperature: %.2f", cfg.Ollama.Temperature)
	log.Printf("   - TopP: %.2f", cfg.Ollama.TopP)
	log.Printf("   - MaxTokens: %d", cfg.Ollama.MaxTokens)

	// Initialize services
	chatService := service.NewChatService(store, ollamaClient)

	log.Println("✅ Services initialized")

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.AllowedOrigins, ",")
	corsConfig.AllowMethods = strings.Split(cfg.Server.AllowedMethods, ",")
	corsConfig.AllowHeaders = strings.Split(cfg.Server.AllowedHeaders, ",")
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		dbStatus := "connected"
		if err := store.Ping(ctx); err != nil {
			dbStatus = "disconnected"
		}

		ollamaStatus := "connected"
		models, err := ollamaClient.ListModels(ctx)
		if err != nil {
			ollamaStatus = "disconnected"
		}

		status := "healthy"
		if dbStatus != "connected" || ollamaStatus != "connected" {
			status = "degraded"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":           status,
			"ollama":           ollamaStatus,
			"database":         dbStatus,
			"backend":          cfg.Store.Backend,
			"model":            cfg.Ollama.Model,
			"available_models": models,
		})
	})

	// Root endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "AI Travel Assistant API",
			"version": Version,
			"model":   cfg.Ollama.Model,
			"features": []string{
				"Smart property search",
				"Booking management",
				"Favorites tracking",
				"Travel recommendations",
			},
			"endpoints": gin.H{
				"chat":   "/api/v1/chat (POST)",
				"health": "/health (GET)",
			},
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/chat", chatHandler.Chat)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}

// newPropertyStore builds the configured store backend. Both backends
// satisfy the same port, so everything past this point is backend-agnostic.
func newPropertyStore(cfg *config.Config) (repository.PropertyStore, error) {
	switch cfg.Store.Backend {
	case "mongo":
		return repository.NewMongoStore(cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Timeout)
	default:
		return repository.NewPostgresStore(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
	}
}
