package middleware

import (
	"crypto/subtle"
	"net/http"

	"roamstay/config"

	"github.com/gin-gonic/gin"
)

// GatewaySignature authenticates payment-gateway webhook calls with the
// shared secret carried in the X-Gateway-Signature header. These calls come
// from the gateway, not a logged-in user, so they bypass JWT auth entirely.
func GatewaySignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.AppConfig.PaymentWebhookSecret
		sig := c.GetHeader("X-Gateway-Signature")
		if secret == "" || subtle.ConstantTimeCompare([]byte(sig), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid gateway signature"})
			return
		}
		c.Next()
	}
}
