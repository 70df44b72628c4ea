// Package main is the entry point for the trivia API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/trivia-service/internal/adapters/http"
	"github.com/jsamuelsen/trivia-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/trivia-service/internal/adapters/persistence"
	"github.com/jsamuelsen/trivia-service/internal/app"
	"github.com/jsamuelsen/trivia-service/internal/platform/config"
	"github.com/jsamuelsen/trivia-service/internal/platform/logging"
	"github.com/jsamuelsen/trivia-service/internal/platform/telemetry"
	"github.com/jsamuelsen/trivia-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load and validate configuration (fail fast)
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 2. Logging
	logger := logging.New(&logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Service:     cfg.App.Name,
		Version:     Version,
		Environment: cfg.App.Environment,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("database", cfg.Database.Driver),
	)

	// 3. Telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 4. Storage
	db, err := persistence.Open(&cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	defer func() {
		if closeErr := persistence.Close(db); closeErr != nil {
			logger.Error("database close error", slog.Any("error", closeErr))
		}
	}()

	if err := persistence.Setup(ctx, db, &cfg.Database, logger); err != nil {
		return fmt.Errorf("preparing database: %w", err)
	}

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(persistence.NewHealthChecker(db)); err != nil {
		return fmt.Errorf("registering database health check: %w", err)
	}

	// 5. Application layer
	triviaService := app.NewTriviaService(app.TriviaServiceConfig{
		Questions:  persistence.NewQuestionRepository(db),
		Categories: persistence.NewCategoryRepository(db),
		Recorder:   telemetry.NewTriviaMetrics(prometheus.DefaultRegisterer),
		Logger:     logger,
	})

	// 6. HTTP
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:         logger,
		ServiceName:    cfg.App.Name,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		Trivia:         handlers.NewTriviaHandler(triviaService),
		Health: handlers.NewHealthHandler(
			healthRegistry,
			handlers.NewBuildInfo(Version, Commit, BuildTime),
			prometheus.DefaultGatherer,
		),
	})

	// 7. Serve until SIGINT/SIGTERM, then drain
	if err := server.Run(ctx); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}
