package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"earnplay/internal/app" // Session lifecycle

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SessionKey is the gin context key holding the *app.Session
const SessionKey = "session"

// SessionAuthMiddleware validates the bearer token and injects the active session
func SessionAuthMiddleware(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		s, err := a.Authorize(tokenStr)                       // Match it against the active session
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"path":  c.FullPath(),
				"error": err.Error(),
			}).Debug("Rejected session token")
			// If the token is not for the active session, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		c.Set(SessionKey, s) // Store session in context
		c.Next()             // Proceed to the next handler
	}
}

// CurrentSession returns the session injected by SessionAuthMiddleware
func CurrentSession(c *gin.Context) (*app.Session, bool) {
	v, exists := c.Get(SessionKey) // Get session from context
	if !exists {
		return nil, false
	}
	s, ok := v.(*app.Session)
	return s, ok
}
