package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen/trivia-service/internal/ports"
)

// HealthChecker pings the database for the readiness probe.
type HealthChecker struct {
	db *gorm.DB
}

var _ ports.HealthChecker = (*HealthChecker)(nil)

// NewHealthChecker creates a checker for the given pool.
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name identifies the check in readiness output.
func (h *HealthChecker) Name() string { return serviceName }

// Check pings the underlying connection pool.
func (h *HealthChecker) Check(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("accessing connection pool: %w", err)
	}

	return sqlDB.PingContext(ctx)
}
