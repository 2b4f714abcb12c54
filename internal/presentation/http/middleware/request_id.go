package middleware

import (
	"github.com/StoreScope/storescope-go/internal/infrastructure/security"
	"github.com/gin-gonic/gin"
)

// RequestIDMiddleware assigns each request a ULID for log correlation.
// An incoming X-Request-ID header is honored so upstream proxies can
// propagate their own IDs.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = security.GenerateULID()
		}

		c.Set("requestId", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
