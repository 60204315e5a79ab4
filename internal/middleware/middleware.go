package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sreeayiengaran/storefront-golang/internal/auth"
)

// SessionHeader carries the opaque shopper session id. It is not an
// identity; it only scopes the in-memory cart. Authentication of shoppers
// lives outside this service.
const SessionHeader = "X-Session-ID"

// ContextSessionID is the gin context key the session middleware sets.
const ContextSessionID = "sessionID"

// ContextAdminEmail is the gin context key the admin middleware sets.
const ContextAdminEmail = "adminEmail"

// ShopperSession ensures every cart/checkout request has a session id. A
// missing header gets a fresh id, echoed back so the frontend can pin it.
func ShopperSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Header(SessionHeader, sessionID)
		c.Set(ContextSessionID, sessionID)
		c.Next()
	}
}

// AdminAuth validates the Bearer token on every /admin route and stores the
// admin identity in the context.
func AdminAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be 'Bearer <token>'"})
			return
		}

		subject, err := auth.ValidateToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextAdminEmail, subject)
		c.Next()
	}
}
