package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxIDLength caps client supplied ids before they reach logs and headers.
const maxIDLength = 128

type idMiddlewareConfig struct {
	headerName string
	contextKey string
	enrich     func(ctx context.Context, id string) context.Context
}

func createIDMiddleware(cfg idMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.headerName)
		if id == "" || len(id) > maxIDLength {
			id = uuid.NewString()
		}

		c.Set(cfg.contextKey, id)
		c.Header(cfg.headerName, id)
		c.Request = c.Request.WithContext(cfg.enrich(c.Request.Context(), id))

		c.Next()
	}
}

func getIDFromContext(c *gin.Context, key string) string {
	return c.GetString(key)
}
