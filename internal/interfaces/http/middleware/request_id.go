package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"partner-portal.backend/pkg/utils"
)

const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an ID for log correlation.
// An inbound X-Request-ID is trusted if present; otherwise a UUIDv7 is
// minted so ids sort by arrival time.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = utils.GenerateUUIDv7().String()
		}

		c.Set(RequestIDKey, id)
		c.Header(requestIDHeader, id)

		// pkg/logger reads the untyped "request_id" key from the request context
		ctx := context.WithValue(c.Request.Context(), "request_id", id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
