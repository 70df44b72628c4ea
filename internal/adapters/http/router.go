package http

import (
	"log/slog"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/trivia-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/trivia-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/trivia-service/internal/platform/telemetry"
)

// corsMaxAge is how long browsers may cache a preflight answer.
const corsMaxAge = 12 * time.Hour

// RouterConfig holds what SetupRouter mounts.
type RouterConfig struct {
	Logger      *slog.Logger
	ServiceName string

	// CORSOrigins lists allowed origins; "*" allows any.
	CORSOrigins []string

	// RequestTimeout bounds the game endpoints. Zero disables it.
	RequestTimeout time.Duration

	Trivia *handlers.TriviaHandler
	Health *handlers.HealthHandler
}

// SetupRouter installs the middleware chain and every route on engine.
//
// Global middleware, outermost first:
//  1. Recovery
//  2. Request ID, then correlation ID
//  3. OpenTelemetry tracing, then HTTP metrics
//  4. Request logging (skips /-/ routes)
//  5. CORS
//
// Game routes are mounted at the root behind the request timeout so the
// existing front end keeps working. Operational routes live under /-/.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.MetricsMiddleware(),
		middleware.Logging(cfg.Logger),
		cors.New(corsConfig(cfg.CORSOrigins)),
	)

	engine.NoRoute(noRoute)
	engine.NoMethod(noMethod)

	if cfg.Health != nil {
		cfg.Health.RegisterRoutes(engine)
	}

	if cfg.Trivia != nil {
		api := engine.Group("/")
		api.Use(middleware.Timeout(cfg.RequestTimeout))
		cfg.Trivia.RegisterRoutes(api)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{middleware.HeaderRequestID, middleware.HeaderCorrelationID, telemetry.TraceIDHeader},
		MaxAge:        corsMaxAge,
	}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}
