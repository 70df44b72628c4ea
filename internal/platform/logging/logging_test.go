package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, defaultLogger, FromContext(nil)) //nolint:staticcheck // nil guard
	assert.Equal(t, defaultLogger, FromContext(context.Background()))

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Equal(t, custom, FromContext(WithContext(context.Background(), custom)))
}

func TestContextIDs(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithTraceID(ctx, "trace-456")
	ctx = WithCorrelationID(ctx, "corr-789")

	FromContext(ctx).InfoContext(ctx, "question deleted")

	entry := decode(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "trace-456", entry["trace_id"])
	assert.Equal(t, "corr-789", entry["correlation_id"])
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	t.Cleanup(func() { SetDefault(original) })

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetDefault(custom)

	assert.Equal(t, custom, FromContext(context.Background()))
	assert.Equal(t, custom, slog.Default())
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{
		Level:       "info",
		Format:      "json",
		Service:     "trivia-service",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	logger.Info("categories listed", slog.Int("count", 6))

	entry := decode(t, &buf)
	assert.Equal(t, "categories listed", entry["msg"])
	assert.Equal(t, "trivia-service", entry["service_name"])
	assert.Equal(t, "1.0.0", entry["service_version"])
	assert.Equal(t, "test", entry["environment"])
	assert.EqualValues(t, 6, entry["count"])
}

func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{Level: "debug", Format: "text", Service: "trivia-service"}, &buf)

	logger.Debug("debug message")

	assert.Contains(t, buf.String(), "debug message")
	assert.Contains(t, buf.String(), "service_name=trivia-service")
}

func TestNewWithWriter_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{Level: "info", Format: "pretty", Service: "trivia-service"}, &buf)

	logger.Info("pretty message", slog.String("password", "hunter2"))
	logger.Debug("hidden")

	assert.Contains(t, buf.String(), "pretty message")
	assert.NotContains(t, buf.String(), "hunter2")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewWithWriter_WithFileConfig(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "trivia.log")

	var buf bytes.Buffer
	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  "text",
		Service: "trivia-service",
		File: FileConfig{
			Enabled:    true,
			Path:       logFile,
			MaxSizeMB:  1,
			MaxBackups: 1,
			MaxAgeDays: 1,
		},
	}, &buf)

	logger.Info("question created", slog.Int("question_id", 7))

	assert.Contains(t, buf.String(), "question created")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(content, &entry), "file output is always JSON")
	assert.Equal(t, "question created", entry["msg"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    slog.Level
		expected log.Level
	}{
		{"trace maps to debug", LevelTrace, log.DebugLevel},
		{"debug", slog.LevelDebug, log.DebugLevel},
		{"info", slog.LevelInfo, log.InfoLevel},
		{"warn", slog.LevelWarn, log.WarnLevel},
		{"error", slog.LevelError, log.ErrorLevel},
		{"very high maps to error", slog.Level(12), log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slogToCharmLevel(tt.input))
		})
	}
}

func TestMultiHandler_Handle(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer
	multi := NewMultiHandler(
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	logger := slog.New(multi)

	assert.True(t, multi.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, multi.Enabled(context.Background(), LevelTrace))

	logger.Info("both")
	assert.Contains(t, debugBuf.String(), "both")
	assert.Contains(t, infoBuf.String(), "both")

	debugBuf.Reset()
	infoBuf.Reset()

	logger.Debug("debug only")
	assert.Contains(t, debugBuf.String(), "debug only")
	assert.Empty(t, infoBuf.String())
}

func TestMultiHandler_WithAttrsAndGroup(t *testing.T) {
	var a, b bytes.Buffer
	multi := NewMultiHandler(slog.NewJSONHandler(&a, nil), slog.NewJSONHandler(&b, nil))

	logger := slog.New(multi.WithAttrs([]slog.Attr{slog.String("component", "quiz")}).WithGroup("draw"))
	logger.Info("drawn", slog.Int("question_id", 3))

	for _, out := range []string{a.String(), b.String()} {
		assert.Contains(t, out, `"component":"quiz"`)
		assert.Contains(t, out, `"draw":{"question_id":3}`)
	}
}

func TestNewReplaceAttr(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		value        string
		shouldRedact bool
	}{
		{"password field", "password", "secret123", true},
		{"token field", "token", "my-secret-token", true},
		{"dsn field", "dsn", "host=db user=trivia", true},
		{"secret prefix", "secret_config", "sensitive-data", true},
		{"postgres url", "target", "postgres://trivia:pa55@db:5432/trivia", true},
		{"keyword dsn", "conn", "host=db user=trivia password=pa55 dbname=trivia", true},
		{"bearer", "header", "Bearer abc123xyz456", true},
		{"search term", "search_term", "apollo", false},
		{"driver", "driver", "postgres", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()}))

			logger.Info("test", slog.String(tt.key, tt.value))

			if tt.shouldRedact {
				assert.NotContains(t, buf.String(), tt.value)
				assert.Contains(t, buf.String(), tt.key)
			} else {
				assert.Contains(t, buf.String(), tt.value)
			}
		})
	}
}

func TestFromContextOr(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Equal(t, fallback, FromContextOr(context.Background(), fallback))
	assert.Equal(t, fallback, FromContextOr(nil, fallback)) //nolint:staticcheck // nil guard

	custom := slog.New(slog.NewJSONHandler(io.Discard, nil))
	assert.Equal(t, custom, FromContextOr(WithContext(context.Background(), custom), fallback))
}
