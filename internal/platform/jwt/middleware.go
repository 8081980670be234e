package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserID is the gin context key holding the authenticated user's id.
	ContextUserID = "userID"
	// ContextEmail is the gin context key holding the authenticated user's email.
	ContextEmail = "email"
)

// RevocationChecker reports whether a token has been revoked by logout.
type RevocationChecker interface {
	Contains(ctx context.Context, token string) (bool, error)
}

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only. Tokens revoked by logout
// are rejected even while their signature and expiry are still valid.
func AuthRequired(m *Manager, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Reject tokens the user has logged out with
		if revoked != nil {
			isRevoked, err := revoked.Contains(c.Request.Context(), tokenStr)
			if err != nil || isRevoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
		}

		// 3. Verify JWT signature and expiry
		userID, email, err := m.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 4. Attach claims to the request context for downstream handlers
		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, email)

		// 5. Pass control to the next handler
		c.Next()
	}
}

// UserID returns the authenticated user's id attached by AuthRequired.
// The second return value is false when no authenticated principal is present.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Email returns the authenticated user's email attached by AuthRequired.
// The second return value is false when no authenticated principal is present.
func Email(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextEmail)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
