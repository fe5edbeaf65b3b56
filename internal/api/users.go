package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"user_service/internal/domain"     // Importing domain models
	"user_service/internal/repository" // User repository

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// sendStoreError is the single translation point from a repository failure
// to an HTTP response. The cause is logged server-side; the client only
// ever sees a generic message.
func sendStoreError(c *gin.Context, err error) {
	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,       // Request method
		"path":   c.Request.URL.Path,     // Request path
		"error":  err.Error(),            // Underlying cause, kept server-side
	}).Error("Store operation failed")
	c.String(http.StatusInternalServerError, "Failed to process request")
}

// ListUsersHandler returns every user as a JSON array
func ListUsersHandler(repo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := repo.ListAll(c.Request.Context()) // Fetch all rows
		if err != nil {
			sendStoreError(c, err) // Store failure
			return
		}
		c.JSON(http.StatusOK, users) // Return the full list
	}
}

// LoginHandler validates the username/password pair passed as query
// parameters. A mismatch is 404 with a message that does not reveal which
// of the two fields was wrong.
func LoginHandler(repo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Query("username") // Login name from query
		password := c.Query("password") // Password from query
		user, err := repo.Login(c.Request.Context(), username, password)
		if err != nil {
			sendStoreError(c, err) // Store failure
			return
		}
		// Empty result means invalid credentials
		if user == nil {
			c.String(http.StatusNotFound, "Username or Password is wrong")
			return
		}
		c.JSON(http.StatusOK, user) // Return the matching user
	}
}

// GetUserHandler fetches a single user by path id plus username query
// parameter, answering 404 when no row matches
func GetUserHandler(repo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Path id must be numeric
		if err != nil {
			// Malformed path parameter is the caller's fault
			c.String(http.StatusBadRequest, "Invalid user id")
			return
		}
		username := c.Query("username") // Secondary key from query
		user, err := repo.FindByID(c.Request.Context(), uint(id), username)
		if err != nil {
			sendStoreError(c, err) // Store failure
			return
		}
		// No matching row
		if user == nil {
			c.String(http.StatusNotFound, "Users "+strconv.FormatUint(id, 10)+" not found")
			return
		}
		c.JSON(http.StatusOK, user) // Return the matching row
	}
}

// InsertUserHandler parses the body as a user and inserts it. The id in
// the body is ignored; the store assigns the key.
func InsertUserHandler(repo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.User // Bind JSON request to the entity
		if err := c.ShouldBindJSON(&user); err != nil {
			// Malformed body is the caller's fault
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		count, err := repo.Insert(c.Request.Context(), user)
		if err != nil {
			sendStoreError(c, err) // Store failure
			return
		}
		c.String(http.StatusOK, "Inserted: "+strconv.FormatInt(count, 10)+" values\n")
	}
}

// UpdateUserHandler parses the body as a user and rewrites the row keyed
// by its id
func UpdateUserHandler(repo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.User // Bind JSON request to the entity
		if err := c.ShouldBindJSON(&user); err != nil {
			// Malformed body is the caller's fault
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		count, err := repo.Update(c.Request.Context(), user)
		if err != nil {
			sendStoreError(c, err) // Store failure
			return
		}
		c.String(http.StatusOK, "Updated: "+strconv.FormatInt(count, 10)+" values\n")
	}
}

// DeleteUserHandler removes the row matching the path id. Deleting a row
// that does not exist reports zero values, not an error.
func DeleteUserHandler(repo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Path id must be numeric
		if err != nil {
			// Malformed path parameter is the caller's fault
			c.String(http.StatusBadRequest, "Invalid user id")
			return
		}
		count, err := repo.DeleteByID(c.Request.Context(), uint(id))
		if err != nil {
			sendStoreError(c, err) // Store failure
			return
		}
		c.String(http.StatusOK, "Deleted: "+strconv.FormatInt(count, 10)+" values\n")
	}
}
