package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/puwasa/pos-terminal/internal/session"
)

// RequireSession blocks requests until a cashier has logged in. The remote
// client refreshes expired access tokens on its own, so only the presence
// of a session is checked here.
func RequireSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sess.Tokens.HasSession() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not logged in",
			})
			return
		}
		c.Next()
	}
}
