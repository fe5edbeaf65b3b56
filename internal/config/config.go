package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBUser        string // Database user
	DBPassword    string // Database password
	DBHost        string // Database host
	DBPort        string // Database port
	DBName        string // Database name
	SeedAdminUser string // Initial admin username seeded by the migrate command
	SeedAdminPass string // Initial admin password seeded by the migrate command
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:       os.Getenv("APP_PORT"),             // Application port
		DBUser:        os.Getenv("DB_USER"),              // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),          // Database password
		DBHost:        os.Getenv("DB_HOST"),              // Database host
		DBPort:        os.Getenv("DB_PORT"),              // Database port
		DBName:        os.Getenv("DB_NAME"),              // Database name
		SeedAdminUser: os.Getenv("SEED_ADMIN_USERNAME"),  // Seeded admin username
		SeedAdminPass: os.Getenv("SEED_ADMIN_PASSWORD"),  // Seeded admin password
		IsProd:        os.Getenv("IS_PROD") == "true",    // Is production environment
	}
}

// DSN builds the MySQL Data Source Name from the database settings
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
