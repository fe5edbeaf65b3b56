package main

import (
	"context" // Context for the startup snapshot load
	"log"     // log package is needed for startup logging

	"user_service/internal/api"        // Custom package for API handlers
	"user_service/internal/auth"       // Custom package for the credential snapshot
	"user_service/internal/config"     // Custom package for configuration
	"user_service/internal/domain"     // Custom package for domain models
	"user_service/internal/repository" // Custom package for data access

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Make sure the users table exists before serving traffic
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		logrus.Fatalf("failed to initialize schema: %v", err)
	}

	repo := repository.NewUserRepository(db) // Single point of SQL execution

	// Build the credential snapshot used by the Basic-auth gate. Users
	// added after this point are not visible to authentication until the
	// process restarts.
	store, err := auth.BuildSnapshot(context.Background(), repo)
	if err != nil {
		logrus.Fatalf("failed to build credential snapshot: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(db, repo, store) // Assemble routes and middleware

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
