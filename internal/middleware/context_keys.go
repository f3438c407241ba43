package middleware

import "github.com/gin-gonic/gin"

// userIDKey and storeIDKey are the keys used to store the authenticated
// caller's identity in the request context.
const (
	userIDKey  = contextKey("userID")
	storeIDKey = contextKey("storeID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}

// GetStoreIDFromContext retrieves the caller's store ID from the Gin context.
// Every authenticated caller carries exactly one store identity.
func GetStoreIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(storeIDKey); v != nil {
		if storeID, ok := v.(string); ok {
			return storeID, true
		}
	}
	return "", false
}
