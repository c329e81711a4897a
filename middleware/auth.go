package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests that did not resolve to an active session.
// There is no password layer: the signed session cookie is the credential.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			c.Abort()
			return
		}
		c.Next()
	}
}
