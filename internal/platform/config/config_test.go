package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues checks the built-in defaults without any YAML files.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "trivia-service", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultClientRetryMaxAttempts, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, DefaultClientCircuitMaxFailures, cfg.Client.CircuitBreaker.MaxFailures)
	assert.Equal(t, "https://opentdb.com", cfg.Services.OpenTDB.BaseURL)
	assert.Equal(t, DefaultImportAmount, cfg.Import.Amount)
	assert.Equal(t, DefaultImportWorkers, cfg.Import.Workers)

	require.NoError(t, cfg.Validate())
}

func TestLoad_DatabaseDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "trivia.db", cfg.Database.DSN)
	assert.Equal(t, DefaultDatabaseMaxOpenConns, cfg.Database.MaxOpenConns)
	assert.Equal(t, DefaultDatabaseMaxIdleConns, cfg.Database.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxIdleTime)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.Database.Seed)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_DATABASE_DRIVER", "postgres")
	t.Setenv("APP_DATABASE_DSN", "host=db user=trivia dbname=trivia sslmode=disable")
	t.Setenv("APP_DATABASE_MAX_OPEN_CONNS", "40")
	t.Setenv("APP_SERVICES_OPENTDB_BASE_URL", "http://localhost:9999")
	t.Setenv("APP_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=db user=trivia dbname=trivia sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 40, cfg.Database.MaxOpenConns)
	assert.Equal(t, "http://localhost:9999", cfg.Services.OpenTDB.BaseURL)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestEnvKeyResolver(t *testing.T) {
	resolve := envKeyResolver([]string{"database.max_open_conns", "log.file.max_size", "server.port"})

	assert.Equal(t, "database.max_open_conns", resolve("APP_DATABASE_MAX_OPEN_CONNS"))
	assert.Equal(t, "log.file.max_size", resolve("APP_LOG_FILE_MAX_SIZE"))
	assert.Equal(t, "server.port", resolve("APP_SERVER_PORT"))
	assert.Equal(t, "something.new", resolve("APP_SOMETHING_NEW"))
}

func TestLoad_ProfileFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "base.yaml"), []byte(`
app:
  version: "1.2.3"
database:
  dsn: base.db
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "test.yaml"), []byte(`
app:
  environment: test
database:
  dsn: ":memory:"
  seed: false
`), 0o600))
	t.Chdir(dir)

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.False(t, cfg.Database.Seed)
}

func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "trivia-service", cfg.App.Name)
}

func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/app.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

func TestLoad_ClientDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Client.Retry.InitialInterval)
	assert.Equal(t, 5*time.Second, cfg.Client.Retry.MaxInterval)
	assert.Equal(t, DefaultClientRetryMultiplier, cfg.Client.Retry.Multiplier)
	assert.Equal(t, 30*time.Second, cfg.Client.CircuitBreaker.Timeout)
	assert.Equal(t, DefaultClientCircuitHalfOpenLimit, cfg.Client.CircuitBreaker.HalfOpenLimit)
}
