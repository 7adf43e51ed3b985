package middleware

import (
	"go-encash/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID memastikan setiap request punya ID: pakai X-Request-ID dari
// caller kalau ada, generate kalau tidak, lalu echo kembali di response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(
			contextutil.WithRequestID(c.Request.Context(), rid),
		)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
