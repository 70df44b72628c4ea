// Package clients provides the instrumented HTTP client used to reach
// upstream trivia providers.
package clients

import (
	"errors"
	"fmt"
)

var (
	// ErrCircuitOpen is returned without contacting upstream while the
	// breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last attempt's error once retries run out.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")

	// ErrDecode is returned when a response body is not the expected JSON.
	ErrDecode = errors.New("decoding response")
)

// StatusError reports a non-2xx response that was not retried.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.Service, e.StatusCode)
}
