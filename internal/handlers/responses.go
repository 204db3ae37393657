package handlers

import (
	"log/slog"
	"net/http"

	"transaction-seeder/internal/errors"
	"transaction-seeder/internal/middleware"

	"github.com/labstack/echo/v4"
)

// TraceIDContextKey is where the request ID middleware stores the trace ID
const TraceIDContextKey = middleware.TraceIDContextKey

// SuccessResponse wraps every successful JSON body
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse = errors.ErrorResponse

// SendError writes the envelope for code with the status registered for it.
// Handlers return client and domain failures through here, never through
// echo.NewHTTPError.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, middleware.GetTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with a generic SYSTEM_001 so storage
// details never reach the client
func SendSystemError(c echo.Context, err error) error {
	errorResponse, internalErr := errors.WrapSystemError(err, middleware.GetTraceID(c))
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", errorResponse.Error.TraceID,
		"path", c.Request().URL.Path,
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
