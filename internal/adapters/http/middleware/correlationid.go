package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	// HeaderCorrelationID ties together the requests of one client action
	// across services, unlike the per-hop request id.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin.Context key of the correlation id.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID propagates X-Correlation-ID, generating one at the origin.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderCorrelationID,
		contextKey: ContextKeyCorrelationID,
		enrich:     withCorrelationID,
	})
}

// GetCorrelationID returns the correlation id, or "" outside the middleware.
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}
