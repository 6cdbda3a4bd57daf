package middleware

import "github.com/gin-gonic/gin"

const userIDKey = contextKey("userID")
const isAdminKey = contextKey("isAdmin")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if v := c.Request.Context().Value(userIDKey); v != nil {
			if userID, ok := v.(string); ok {
				return userID, true
			}
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// IsAdminFromContext reports whether the current session carries the admin flag.
func IsAdminFromContext(c *gin.Context) bool {
	if v, exists := c.Get(string(isAdminKey)); exists {
		isAdmin, ok := v.(bool)
		return ok && isAdmin
	}
	if v := c.Request.Context().Value(isAdminKey); v != nil {
		isAdmin, ok := v.(bool)
		return ok && isAdmin
	}
	return false
}
