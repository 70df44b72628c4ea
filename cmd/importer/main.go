// Package main is the question importer: a one-shot job that copies
// multiple-choice questions from the Open Trivia DB into local storage.
//
// It reads the same configuration as the API server. import.amount and
// import.workers (APP_IMPORT_AMOUNT, APP_IMPORT_WORKERS) size the run.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/trivia-service/internal/adapters/clients"
	"github.com/jsamuelsen/trivia-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/trivia-service/internal/adapters/persistence"
	"github.com/jsamuelsen/trivia-service/internal/app"
	"github.com/jsamuelsen/trivia-service/internal/platform/config"
	"github.com/jsamuelsen/trivia-service/internal/platform/logging"
	"github.com/jsamuelsen/trivia-service/internal/platform/telemetry"
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

	logger := logging.New(&logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Service:     cfg.App.Name + "-importer",
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
	})
	logging.SetDefault(logger)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName + "-importer",
		Version:      cfg.App.Version,
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

	httpClient, err := clients.New(clients.ConfigFor(cfg.Services.OpenTDB, cfg.Client, logger))
	if err != nil {
		return fmt.Errorf("creating %s client: %w", cfg.Services.OpenTDB.Name, err)
	}

	source := acl.NewOpenTDBSource(acl.OpenTDBSourceConfig{
		Client:      httpClient,
		ServiceName: cfg.Services.OpenTDB.Name,
		Logger:      logger,
	})

	if err := source.Check(ctx); err != nil {
		return fmt.Errorf("%s is not reachable: %w", source.Name(), err)
	}

	// A private registry: the job exits before anything could scrape it.
	metrics := telemetry.NewTriviaMetrics(prometheus.NewRegistry())
	categories := persistence.NewCategoryRepository(db)

	trivia := app.NewTriviaService(app.TriviaServiceConfig{
		Questions:  persistence.NewQuestionRepository(db),
		Categories: categories,
		Recorder:   metrics,
		Logger:     logger,
	})

	importer := app.NewImporter(app.ImporterConfig{
		Source:     source,
		Categories: categories,
		Trivia:     trivia,
		Workers:    cfg.Import.Workers,
		Recorder:   metrics,
		Logger:     logger,
	})

	report, err := importer.Run(ctx, cfg.Import.Amount)
	if err != nil {
		return fmt.Errorf("importing questions: %w", err)
	}

	total, err := trivia.CountQuestions(ctx)
	if err != nil {
		return err
	}

	logger.Info("import complete",
		slog.Int("fetched", report.Fetched),
		slog.Int("imported", report.Imported),
		slog.Int("skipped", report.Skipped),
		slog.Int("total_questions", total),
	)

	return nil
}
