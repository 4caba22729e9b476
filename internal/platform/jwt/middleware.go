package jwtauth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
)

// Context keys set by the middleware for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextRole     = "userRole"
	ContextTokenID  = "tokenID"
	ContextTokenExp = "tokenExp"
)

// RevocationChecker reports whether a token id has been revoked (logout).
// A nil checker means revocation is not configured and every verified
// token is accepted until it expires.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthRequired returns a Gin middleware that verifies the signed token
// cookie and restricts access to authenticated users only.
func AuthRequired(secret string, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.Response{Success: false, Message: "authentication required"})
			return
		}

		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.Response{Success: false, Message: "server misconfigured"})
			return
		}

		claims, err := ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.Response{Success: false, Message: "invalid or expired token"})
			return
		}

		if revocations != nil && claims.TokenID != "" {
			revoked, err := revocations.IsRevoked(c.Request.Context(), claims.TokenID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, api.Response{Success: false, Message: "internal server error"})
				return
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.Response{Success: false, Message: "invalid or expired token"})
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextTokenID, claims.TokenID)
		c.Set(ContextTokenExp, claims.ExpiresAt)
		c.Next()
	}
}

// UserID extracts the authenticated user's id set by AuthRequired.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
