package middleware

import (
	"strings"

	"github.com/digipark/captionforge/internal/logger"
	"github.com/gin-gonic/gin"
)

// userIDKey is the Gin context key the identity middleware stores the
// caller's user ID under.
const userIDKey = "user_id"

// Identity extracts the caller's opaque user ID from the Authorization
// bearer token, falling back to the X-User-ID header. Identity is optional
// on most routes: anonymous callers can still generate, they just get no
// history. Handlers that require a user ID enforce that themselves.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := ""
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			userID = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		}
		if userID == "" {
			userID = strings.TrimSpace(c.GetHeader("X-User-ID"))
		}

		if userID != "" {
			c.Set(userIDKey, userID)
			ctx := logger.SetUserID(c.Request.Context(), userID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// UserID returns the caller's user ID set by Identity, or "" for an
// anonymous request.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
