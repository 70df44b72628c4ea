package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/trivia-service/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware gin.HandlerFunc
		header     string
		get        func(*gin.Context) string
		fromCtx    func(context.Context) string
	}{
		{name: "request id", middleware: RequestID(), header: HeaderRequestID, get: GetRequestID, fromCtx: RequestIDFromContext},
		{name: "correlation id", middleware: CorrelationID(), header: HeaderCorrelationID, get: GetCorrelationID, fromCtx: CorrelationIDFromContext},
	}

	for _, tt := range tests {
		t.Run(tt.name+" propagated", func(t *testing.T) {
			var fromGin, fromCtx string

			engine := gin.New()
			engine.Use(tt.middleware)
			engine.GET("/", func(c *gin.Context) {
				fromGin = tt.get(c)
				fromCtx = tt.fromCtx(c.Request.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set(tt.header, "client-id-1")
			w := serve(engine, req)

			assert.Equal(t, "client-id-1", w.Header().Get(tt.header))
			assert.Equal(t, "client-id-1", fromGin)
			assert.Equal(t, "client-id-1", fromCtx)
		})

		t.Run(tt.name+" generated", func(t *testing.T) {
			engine := gin.New()
			engine.Use(tt.middleware)
			engine.GET("/", func(*gin.Context) {})

			w := serve(engine, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			_, err := uuid.Parse(w.Header().Get(tt.header))
			assert.NoError(t, err)
		})

		t.Run(tt.name+" oversized replaced", func(t *testing.T) {
			engine := gin.New()
			engine.Use(tt.middleware)
			engine.GET("/", func(*gin.Context) {})

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set(tt.header, strings.Repeat("x", maxIDLength+1))
			w := serve(engine, req)

			_, err := uuid.Parse(w.Header().Get(tt.header))
			assert.NoError(t, err)
		})
	}
}

func TestIDMiddleware_EnrichesContextLogger(t *testing.T) {
	logger, buf := bufferLogger()

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
	}, RequestID(), CorrelationID())
	engine.GET("/", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(HeaderRequestID, "req-7")
	req.Header.Set(HeaderCorrelationID, "corr-7")
	serve(engine, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Equal(t, "corr-7", entry["correlation_id"])
}

func TestGetIDs_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetCorrelationID(c))
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, CorrelationIDFromContext(nil)) //nolint:staticcheck // nil context is handled
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		wantLog   bool
	}{
		{name: "success", path: "/questions?page=2", status: http.StatusOK, wantLevel: "INFO", wantLog: true},
		{name: "client error", path: "/questions", status: http.StatusNotFound, wantLevel: "WARN", wantLog: true},
		{name: "server error", path: "/questions", status: http.StatusInternalServerError, wantLevel: "ERROR", wantLog: true},
		{name: "operational route", path: "/-/live", status: http.StatusOK},
		{name: "skipped path", path: "/favicon.ico", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := bufferLogger()

			engine := gin.New()
			engine.Use(Logging(logger, "/favicon.ico"))
			engine.NoRoute(func(c *gin.Context) { c.Status(tt.status) })

			serve(engine, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			if !tt.wantLog {
				assert.Zero(t, buf.Len())
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "request completed", entry["msg"])
			assert.InDelta(t, tt.status, entry["status"], 0)
		})
	}
}

func TestRecovery(t *testing.T) {
	logger, buf := bufferLogger()

	engine := gin.New()
	engine.Use(Recovery(logger))
	engine.GET("/panic", func(*gin.Context) { panic("kaboom") })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/panic", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":500,"message":"internal server error"}`, w.Body.String())
	assert.Contains(t, buf.String(), "kaboom")
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestRecovery_AfterWrite(t *testing.T) {
	logger, _ := bufferLogger()

	engine := gin.New()
	engine.Use(Recovery(logger))
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("late")
	})

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestTimeout(t *testing.T) {
	t.Run("sets deadline", func(t *testing.T) {
		var hasDeadline bool

		engine := gin.New()
		engine.Use(Timeout(time.Second))
		engine.GET("/", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
			c.Status(http.StatusNoContent)
		})

		w := serve(engine, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		assert.True(t, hasDeadline)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("expired without response", func(t *testing.T) {
		engine := gin.New()
		engine.Use(Timeout(10 * time.Millisecond))
		engine.GET("/", func(c *gin.Context) {
			<-c.Request.Context().Done()
		})

		w := serve(engine, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"success":false,"error":503,"message":"service unavailable"}`, w.Body.String())
	})

	t.Run("disabled", func(t *testing.T) {
		var hasDeadline bool

		engine := gin.New()
		engine.Use(Timeout(0))
		engine.GET("/", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
		})

		serve(engine, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		assert.False(t, hasDeadline)
	})
}
