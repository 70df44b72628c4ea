package persistence

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"

	"gorm.io/gorm"

	"github.com/jsamuelsen/trivia-service/internal/domain"
)

const serviceName = "database"

// translate maps gorm and driver errors onto domain errors.
// Missing rows become NotFound, lost connections become Unavailable and
// everything else is wrapped with the operation name.
func translate(op, entity string, id int, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NewNotFoundError(entity, strconv.Itoa(id))
	case isConnectionError(err):
		return domain.NewUnavailableError(serviceName, err.Error())
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isConnectionError(err error) bool {
	var netErr net.Error
	var opErr *net.OpError

	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &opErr) ||
		(errors.As(err, &netErr) && netErr.Timeout())
}
