package middleware

import (
	"net/http"
	"strings"

	userRepo "roamstay/database/repository/user"
	"roamstay/models"
	"roamstay/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware authenticates the request and attaches the caller
// identity to the context. Token hashes are checked against the Redis auth
// cache first, falling back to the user store, so a revoked token dies even
// before its expiry.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		cache := utils.GetAuthCacheClient()
		cachedHash, cacheErr := cache.Get(c.Request.Context(), utils.AuthCachePrefix+userID).Result()
		if cacheErr != nil || cachedHash != computedHash {
			// Cache miss or stale entry; the user store is authoritative.
			u, err := repo.GetByTokenHash(c.Request.Context(), computedHash)
			if err != nil || u == nil || u.ID != userID {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or user not found"})
				return
			}
			role = u.Role
			_ = cache.Set(c.Request.Context(), utils.AuthCachePrefix+userID, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set("caller", models.Caller{ID: userID, Role: role})
		c.Next()
	}
}

// CallerFrom extracts the authenticated caller set by JWTAuthMiddleware.
func CallerFrom(c *gin.Context) models.Caller {
	if v, ok := c.Get("caller"); ok {
		if caller, ok := v.(models.Caller); ok {
			return caller
		}
	}
	return models.Caller{}
}
