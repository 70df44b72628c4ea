package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error { return s.err }

func TestRegister(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "database"}))
	require.NoError(t, registry.Register(&stubChecker{name: "opentdb"}))

	err := registry.Register(&stubChecker{name: "database"})

	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "database")
	assert.Equal(t, []string{"database", "opentdb"}, registry.Names())
}

func TestCheckAll_NoCheckers(t *testing.T) {
	result := NewHealthRegistry().CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []*stubChecker
		wantStatus HealthStatus
	}{
		{
			name:       "all healthy",
			checkers:   []*stubChecker{{name: "database"}, {name: "opentdb"}},
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "database down",
			checkers: []*stubChecker{
				{name: "database", err: errors.New("connection refused")},
				{name: "opentdb"},
			},
			wantStatus: HealthStatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.wantStatus, result.Status)
			require.Len(t, result.Checks, len(tt.checkers))

			for _, c := range tt.checkers {
				check := result.Checks[c.name]
				require.NotNil(t, check, c.name)

				if c.err != nil {
					assert.Equal(t, HealthStatusUnhealthy, check.Status)
					assert.Equal(t, c.err.Error(), check.Message)
				} else {
					assert.Equal(t, HealthStatusHealthy, check.Status)
					assert.Empty(t, check.Message)
				}
			}
		})
	}
}

type slowChecker struct{}

func (slowChecker) Name() string { return "slow" }

func (slowChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Second):
		return nil
	}
}

func TestCheckAll_ContextCancelled(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(slowChecker{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["slow"].Message, "context canceled")
}
