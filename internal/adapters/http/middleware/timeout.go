package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/trivia-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/trivia-service/internal/platform/logging"
)

// Timeout puts a deadline on the request context. Storage calls observe it
// through the context. If the deadline passed and the handler wrote
// nothing, the client gets a 503 envelope. A zero timeout disables it.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		logging.FromContext(ctx).WarnContext(ctx, "request deadline exceeded",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("timeout", timeout),
		)

		if !c.Writer.Written() {
			dto.AbortWithStatus(c, http.StatusServiceUnavailable)
		}
	}
}
