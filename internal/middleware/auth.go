package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"torami_backend/internal/auth"
	"torami_backend/internal/logger"
	"torami_backend/internal/models"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// and role in the Gin context. Everything downstream authorizes against
// these two values only.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RoleMiddleware rejects callers whose role is not the required one.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := roleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		if role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

func roleFromContext(c *gin.Context) (models.UserRole, bool) {
	roleVal, exists := c.Get("role")
	if !exists {
		return "", false
	}

	if role, ok := roleVal.(models.UserRole); ok {
		return role, true
	}
	if roleStr, ok := roleVal.(string); ok {
		return models.UserRole(roleStr), true
	}
	return "", false
}

// GetUserID returns the authenticated user's ID from the Gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserRole returns the authenticated user's role from the Gin context.
func GetUserRole(c *gin.Context) models.UserRole {
	role, _ := roleFromContext(c)
	return role
}
