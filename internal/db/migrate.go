package db

import (
	"user_service/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate creates or updates the users table schema
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Fatal error if connection fails
	}
	// AutoMigrate creates the users table and its unique username index if absent
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// SeedAdmin inserts an initial admin user when none with that username
// exists yet. Without at least one row the credential snapshot is empty
// and no request can ever authenticate.
func SeedAdmin(db *gorm.DB, username, password string) error {
	// Nothing to seed without credentials configured
	if username == "" || password == "" {
		return nil
	}
	admin := domain.User{Username: username, Password: password, Role: "admin"}
	// FirstOrCreate keeps an existing row untouched
	result := db.Where("username = ?", username).FirstOrCreate(&admin)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		logrus.WithField("username", username).Info("Seeded initial admin user")
	}
	return nil
}
