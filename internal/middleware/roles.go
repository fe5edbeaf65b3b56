package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRoles checks the authenticated role against the route's allowed
// role set. Roles stay free-form strings so new roles only need a new
// entry in the route table.
func RequireRoles(roles ...string) gin.HandlerFunc {
	// Build the allowed set once at registration time
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString(ContextRoleKey) // Role set by the authentication gate
		// Authenticated but not permitted on this route
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next() // Proceed to the handler
	}
}
