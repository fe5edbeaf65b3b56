package api

import (
	"user_service/internal/auth"       // Credential snapshot
	"user_service/internal/middleware" // Authentication and authorization gates
	"user_service/internal/repository" // User repository

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter assembles the route table. Every /api route except /login sits
// behind the Basic-auth gate plus a per-route role set.
func NewRouter(db *gorm.DB, repo *repository.UserRepository, store *auth.CredentialStore) *gin.Engine {
	r := gin.Default() // Gin router instance with logger and recovery

	// Liveness probe, outside the gate
	r.GET("/health", HealthHandler(db))

	apiGroup := r.Group("/api")
	// Login validates the credentials carried in the request itself,
	// so it is exempt from the gate
	apiGroup.POST("/login", LoginHandler(repo))

	// Protected routes: authenticate first, then authorize per route
	protected := apiGroup.Group("")
	protected.Use(middleware.BasicAuth(store))
	protected.GET("/users", middleware.RequireRoles("admin", "customer"), ListUsersHandler(repo))        // List all users
	protected.GET("/users/:id", middleware.RequireRoles("admin", "customer"), GetUserHandler(repo))      // Fetch one user
	protected.POST("/users", middleware.RequireRoles("admin"), InsertUserHandler(repo))                  // Insert, admin only
	protected.PUT("/users", middleware.RequireRoles("admin", "customer"), UpdateUserHandler(repo))       // Update by id
	protected.DELETE("/users/:id", middleware.RequireRoles("admin", "customer"), DeleteUserHandler(repo)) // Delete by id

	return r
}
