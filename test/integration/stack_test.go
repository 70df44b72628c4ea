//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	httpadapter "github.com/jsamuelsen/trivia-service/internal/adapters/http"
	"github.com/jsamuelsen/trivia-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/trivia-service/internal/adapters/persistence"
	"github.com/jsamuelsen/trivia-service/internal/adapters/persistence/persistencetest"
	"github.com/jsamuelsen/trivia-service/internal/app"
	"github.com/jsamuelsen/trivia-service/internal/domain"
	"github.com/jsamuelsen/trivia-service/internal/platform/config"
	"github.com/jsamuelsen/trivia-service/internal/ports"
)

// stack is the API server wired the way cmd/service wires it, on a
// sqlite file in a temp dir.
type stack struct {
	server *httptest.Server
	db     *gorm.DB
	svc    *app.TriviaService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDatabaseConfig(tb testing.TB) *config.DatabaseConfig {
	tb.Helper()

	return &config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          filepath.Join(tb.TempDir(), "trivia.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		AutoMigrate:  true,
		Seed:         true,
	}
}

func openDatabase(tb testing.TB) *gorm.DB {
	tb.Helper()

	cfg := testDatabaseConfig(tb)
	logger := discardLogger()

	db, err := persistence.Open(cfg, logger)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = persistence.Close(db) })

	require.NoError(tb, persistence.Setup(context.Background(), db, cfg, logger))

	return db
}

func sampleDeck() []domain.Question {
	return persistencetest.SampleQuestions()
}

func newStack(tb testing.TB) *stack {
	tb.Helper()

	logger := discardLogger()
	db := openDatabase(tb)
	persistencetest.SeedQuestions(tb, db, sampleDeck()...)

	svc := app.NewTriviaService(app.TriviaServiceConfig{
		Questions:  persistence.NewQuestionRepository(db),
		Categories: persistence.NewCategoryRepository(db),
		Logger:     logger,
	})

	registry := ports.NewHealthRegistry()
	require.NoError(tb, registry.Register(persistence.NewHealthChecker(db)))

	serverCfg := &config.ServerConfig{
		Port:            8080,
		Host:            "127.0.0.1",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     time.Minute,
		ShutdownTimeout: time.Second,
		MaxRequestSize:  1 << 20,
		RequestTimeout:  5 * time.Second,
		CORSOrigins:     []string{"*"},
	}

	server := httpadapter.New(serverCfg, logger)
	httpadapter.SetupRouter(server.Engine(), httpadapter.RouterConfig{
		Logger:         logger,
		ServiceName:    "trivia-integration",
		CORSOrigins:    serverCfg.CORSOrigins,
		RequestTimeout: serverCfg.RequestTimeout,
		Trivia:         handlers.NewTriviaHandler(svc),
		Health:         handlers.NewHealthHandler(registry, handlers.NewBuildInfo("it", "none", "now"), prometheus.NewRegistry()),
	})

	ts := httptest.NewServer(server.Engine())
	tb.Cleanup(ts.Close)

	return &stack{server: ts, db: db, svc: svc}
}
