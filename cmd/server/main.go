package main

import (
	"log"

	"bilemo-backend/internal/api/routes"
	"bilemo-backend/internal/config"
	"bilemo-backend/internal/database"
	"bilemo-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "bilemo-backend/docs" // This is needed for swag
)

//	@title			BileMo API
//	@version		1.0
//	@description	Multi-tenant REST API exposing enterprises, their users and their product catalog.

//	@contact.name	API Support
//	@contact.email	support@bilemo.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database; production schemas are managed by the
	// versioned migrations in cmd/migrate, not by AutoMigrate
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		AutoMigrate: !cfg.IsProduction(),
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
