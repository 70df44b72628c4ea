package acl

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jsamuelsen/trivia-service/internal/adapters/clients"
	"github.com/jsamuelsen/trivia-service/internal/domain"
)

// MapClientError translates a clients package error into a domain error.
// Context cancellation passes through unchanged.
func MapClientError(err error, serviceName, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if errors.Is(err, clients.ErrCircuitOpen) {
		return domain.NewUnavailableError(serviceName, "circuit breaker open")
	}

	var statusErr *clients.StatusError
	if errors.As(err, &statusErr) && !errors.Is(err, clients.ErrMaxRetriesExceeded) {
		return mapStatus(statusErr.StatusCode, serviceName, operation)
	}

	if errors.Is(err, clients.ErrDecode) {
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: malformed response", operation))
	}

	return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: %v", operation, err))
}

func mapStatus(code int, serviceName, operation string) error {
	switch {
	case code == http.StatusNotFound:
		return domain.NewNotFoundError(operation, "")
	case code >= http.StatusInternalServerError:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: HTTP %d", operation, code))
	default:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: unexpected HTTP %d", operation, code))
	}
}
