package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id on both request and response.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is where the id lives in the gin context.
	RequestIDKey = "request_id"
)

// RequestID tags every request with an id so log lines from one settings
// operation can be correlated. A client-supplied X-Request-ID is kept;
// otherwise a fresh UUID is minted. The id is echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the request id set by RequestID, or the empty string
// when the middleware did not run.
func GetRequestID(c *gin.Context) string {
	id, _ := c.Get(RequestIDKey)
	s, _ := id.(string)
	return s
}
