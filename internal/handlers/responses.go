package handlers

import (
	"log/slog"
	"net/http"

	"expense-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers answer failures through SendError (client and domain errors, the
// status comes from the code) or SendSystemError (anything internal, which is
// logged and reported as SYSTEM_001). They never build error bodies themselves.

// TraceIDContextKey is where RequestID leaves the trace ID on the echo context
const TraceIDContextKey = "trace_id"

// SuccessResponse wraps every 2xx body
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse = errors.ErrorResponse

func traceIDOf(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, traceIDOf(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError logs err with the request's trace ID and hides it from the caller
func SendSystemError(c echo.Context, err error) error {
	traceID := traceIDOf(c)
	response, cause := errors.WrapSystemError(err, traceID)
	slog.Error("internal error",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Path(),
		"error", cause,
	)
	return c.JSON(http.StatusInternalServerError, response)
}
