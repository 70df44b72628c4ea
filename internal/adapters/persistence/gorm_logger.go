package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen/trivia-service/internal/platform/logging"
)

// GormLogger routes gorm's logging onto slog. Statements are logged at
// logging.LevelTrace, slow statements at warn and failures at error.
// Record-not-found is not a failure here; repositories map it to a domain error.
type GormLogger struct {
	logger        *slog.Logger
	slowThreshold time.Duration
	silent        bool
}

// NewGormLogger creates a gorm logger. A zero slowThreshold disables slow query warnings.
func NewGormLogger(logger *slog.Logger, slowThreshold time.Duration) *GormLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &GormLogger{
		logger:        logger.With(slog.String("component", "persistence")),
		slowThreshold: slowThreshold,
	}
}

// LogMode implements gormlogger.Interface. Only Silent is honoured;
// verbosity is otherwise controlled by the slog level.
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.silent = level == gormlogger.Silent

	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, msg, args...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelError, msg, args...)
}

// Trace logs one executed statement.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.silent {
		return
	}

	logger := logging.FromContextOr(ctx, l.logger)
	elapsed := time.Since(begin)

	level := LevelFor(err, elapsed, l.slowThreshold)
	if !logger.Enabled(ctx, level) {
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	msg := "sql statement"
	switch {
	case level == slog.LevelError:
		msg = "sql statement failed"
		attrs = append(attrs, slog.String("error", err.Error()))
	case level == slog.LevelWarn:
		msg = "slow sql statement"
	}

	logger.LogAttrs(ctx, level, msg, attrs...)
}

// LevelFor picks the log level for a statement outcome.
func LevelFor(err error, elapsed, slowThreshold time.Duration) slog.Level {
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return slog.LevelError
	case slowThreshold > 0 && elapsed > slowThreshold:
		return slog.LevelWarn
	default:
		return logging.LevelTrace
	}
}

func (l *GormLogger) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if l.silent {
		return
	}

	logging.FromContextOr(ctx, l.logger).Log(ctx, level, fmt.Sprintf(msg, args...))
}
