// server/internal/api/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"a2z-ipm-api-server/internal/auth"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

// Authenticate validates the bearer token and stores the claims in the
// request context.
func Authenticate(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := authSvc.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Authorize allows the request through only when the authenticated user
// holds one of the given roles. It must run after Authenticate.
func Authorize(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "User claims not found in context"})
			return
		}

		for _, role := range allowedRoles {
			if role == claims.Role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	}
}

// Claims returns the authenticated user's claims, or nil when Authenticate
// has not run on this request.
func Claims(c *gin.Context) *auth.JWTClaims {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
