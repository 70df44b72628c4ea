// Package dto holds the JSON request and response shapes of the trivia API
// and the mapping from domain errors to the error envelope.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/trivia-service/internal/domain"
	"github.com/jsamuelsen/trivia-service/internal/platform/logging"
)

// ErrorResponse is the envelope of every failed request:
// {"success": false, "error": 404, "message": "resource not found"}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`

	// Details carries field-level reasons for rejected question bodies.
	Details map[string]string `json:"details,omitempty"`

	TraceID string `json:"trace_id,omitempty"`
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusRequestTimeout:      "request timeout",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
	http.StatusServiceUnavailable:  "service unavailable",
}

// NewErrorResponse builds the envelope for status.
func NewErrorResponse(status int) *ErrorResponse {
	message, ok := statusMessages[status]
	if !ok {
		message = http.StatusText(status)
	}

	return &ErrorResponse{Error: status, Message: message}
}

// WithTraceID sets the trace id when it is not empty.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// MapDomainError picks the status for err. The checks run in a fixed order
// so an error carrying several markers maps deterministically.
func MapDomainError(err error) (int, *ErrorResponse) {
	switch {
	case err == nil:
		return http.StatusOK, nil
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(http.StatusNotFound)
	case domain.IsUnprocessable(err):
		resp := NewErrorResponse(http.StatusUnprocessableEntity)

		var fieldErr *FieldErrors
		if errors.As(err, &fieldErr) {
			resp.Details = fieldErr.Fields
		}

		return http.StatusUnprocessableEntity, resp
	case domain.IsValidation(err):
		return http.StatusBadRequest, NewErrorResponse(http.StatusBadRequest)
	case domain.IsUnavailable(err), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, NewErrorResponse(http.StatusServiceUnavailable)
	default:
		return http.StatusInternalServerError, NewErrorResponse(http.StatusInternalServerError)
	}
}

// GetTraceID returns the active span's trace id, or "".
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// HandleError writes the envelope for err. Server-side failures are logged
// with the trace id.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.WithTraceID(GetTraceID(c))

	if status >= http.StatusInternalServerError {
		ctx := c.Request.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "request failed",
			slog.Int("status", status),
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// AbortWithStatus aborts the handler chain with the envelope for status.
func AbortWithStatus(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, NewErrorResponse(status).WithTraceID(GetTraceID(c)))
}
