package main

import (
	"user_service/internal/config" // Custom import path (Config)
	"user_service/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main entry point for migration and seeding
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN()) // Create or update the users table

	// Seed the initial admin user when configured
	conn, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.SeedAdmin(conn, cfg.SeedAdminUser, cfg.SeedAdminPass); err != nil {
		logrus.Fatalf("failed to seed admin user: %v", err)
	}
}
