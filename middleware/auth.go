package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roomify/models"
	"roomify/utils"
)

// Context keys set by JWTAuthMiddleware.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// JWTAuthMiddleware validates the bearer token and checks its session is
// still live in Redis, then stores the caller's id and role on the
// context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil || claims.UserID == "" || claims.SessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		session, err := utils.GetAuthSession(utils.GetAuthCacheClient(), claims.SessionID)
		if err != nil || session.TokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group to one role, admin typically.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(CtxRole)
		if !exists || value.(string) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id from the context.
func CurrentUserID(c *gin.Context) string {
	if v, exists := c.Get(CtxUserID); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// IsAdmin reports whether the authenticated caller has the admin role.
func IsAdmin(c *gin.Context) bool {
	v, exists := c.Get(CtxRole)
	return exists && v.(string) == string(models.RoleAdmin)
}
