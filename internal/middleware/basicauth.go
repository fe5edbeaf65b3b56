package middleware

import (
	"crypto/subtle" // Constant-time password comparison
	"net/http"      // HTTP status codes

	"user_service/internal/auth" // Credential snapshot

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by the authentication gate
const (
	ContextUserKey = "user" // Authenticated user
	ContextRoleKey = "role" // Authenticated user's role
)

// BasicAuth validates HTTP Basic credentials against the credential
// snapshot and stores the authenticated user and role in the context
func BasicAuth(store *auth.CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth() // Parse the Authorization header
		// Missing or malformed header
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="users"`) // Challenge the client
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, found := store.Lookup(username) // Snapshot lookup by login name
		// Unknown user or password mismatch get the same answer so the
		// response does not reveal which of the two was wrong
		if !found || subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
			c.Header("WWW-Authenticate", `Basic realm="users"`) // Challenge the client
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(ContextUserKey, user)      // Store the authenticated user in context
		c.Set(ContextRoleKey, user.Role) // Store the role for the authorization check
		c.Next()                         // Proceed to the next handler
	}
}
