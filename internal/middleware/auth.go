package middleware

import (
	"net/http"
	"strings"

	"siddhartha-be/internal/user"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserIDKey  = "userID"
	CtxUserEmail  = "userEmail"
	CtxIsAdminKey = "isAdmin"
)

// Auth requires a valid bearer token and stores the caller's identity on the
// gin context.
func Auth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearer(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authorized, no token"})
			return
		}

		claims, err := user.ParseJWT(jwtSecret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authorized, token failed"})
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// AdminOnly must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CtxIsAdminKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id set by Auth.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(CtxUserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
