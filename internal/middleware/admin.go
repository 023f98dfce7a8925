package middleware

import (
	"crypto/subtle"

	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const AdminSecretHeader = "X-Admin-Secret"

// AdminSecretMiddleware gates the dashboard API behind the shared admin
// secret. This is a UI convenience gate, not a security boundary: the
// store is expected to enforce its own access control. Wrong secrets get
// an alert-style 401 and unlimited retries.
func AdminSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			apperrors.HandleError(c, apperrors.ConfigurationError("admin", "Admin secret is not configured"))
			c.Abort()
			return
		}

		attempt := c.GetHeader(AdminSecretHeader)
		if subtle.ConstantTimeCompare([]byte(attempt), []byte(secret)) != 1 {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Incorrect admin secret."))
			c.Abort()
			return
		}

		c.Next()
	}
}
