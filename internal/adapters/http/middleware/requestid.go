package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	// HeaderRequestID carries the per-request id.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin.Context key of the request id.
	ContextKeyRequestID = "request_id"
)

// RequestID reuses the incoming X-Request-ID or generates a UUID, echoes it
// in the response, and adds it to the request context and its logger.
func RequestID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderRequestID,
		contextKey: ContextKeyRequestID,
		enrich:     withRequestID,
	})
}

// GetRequestID returns the request id, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyRequestID)
}
