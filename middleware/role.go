package middleware

import (
	"net/http"

	"roamstay/models"

	"github.com/gin-gonic/gin"
)

// RequireRole aborts unless the authenticated caller holds one of the given
// roles. Must run after JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)
		for _, role := range roles {
			if caller.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
	}
}

// RequireAdmin is shorthand for the admin-only endpoints.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireHost allows hosts and admins.
func RequireHost() gin.HandlerFunc {
	return RequireRole(models.RoleHost, models.RoleAdmin)
}
