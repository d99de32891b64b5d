package auth

import (
	"net/http"
	"strings"

	"github.com/allbikes/dealerdesk/internal/requestctx"
	"github.com/gin-gonic/gin"
)

// RequireAuth validates the bearer token and stores the caller identity
// on the request context for downstream handlers and logs.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx := requestctx.WithActor(c.Request.Context(), requestctx.Actor{
			Subject: claims.Subject,
			Role:    claims.Role,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAdmin rejects authenticated callers without the admin role.
// Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := requestctx.ActorFromContext(c.Request.Context())
		if !ok || actor.Role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
