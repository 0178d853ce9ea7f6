package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"student-registration-service/pkg/logger"
)

// RequestID tags every request with an ID, reusing the client's X-Request-ID when present.
// The ID is echoed in the response header and stored in the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(logger.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Header(logger.RequestIDHeader, requestID)

		c.Next()
	}
}
