package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"medscribe-server/internal/catalog"
	"medscribe-server/internal/config"
	"medscribe-server/internal/middleware"
	"medscribe-server/internal/routes"
)

func main() {
	// Load environment variables; a missing .env is fine, the process
	// environment is used as-is.
	envLoaded := godotenv.Load() == nil

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		errLogger := zerolog.New(os.Stderr)
		errLogger.Fatal().Err(err).Msg("Error loading config")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Environment == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if !envLoaded {
		logger.Debug().Msg("no .env file found, using process environment")
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Seed the medicine catalog once; it is read-only afterwards.
	cat := catalog.Seed()

	// Set up routes
	routes.SetupRoutes(router, cat, cfg, logger)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("addr", serverAddr).Msg("MedScribe API listening")
	if err := router.Run(serverAddr); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
