// server/internal/api/handlers/common.go
package handlers

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"a2z-ipm-api-server/internal/auth"
	"a2z-ipm-api-server/internal/models"
)

func oidFromKey(key string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(key)
}

// claimsAssignedTo reports whether the caller may touch the given project.
func claimsAssignedTo(claims *auth.JWTClaims, projectKey string) bool {
	if claims == nil {
		return false
	}
	if claims.Role == models.RoleAdmin {
		return true
	}
	for _, key := range claims.Projects {
		if key == projectKey {
			return true
		}
	}
	return false
}
