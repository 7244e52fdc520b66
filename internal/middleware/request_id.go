package middleware

import (
	"regexp"

	"expense-tracker/internal/handlers"
	"expense-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceIDHeader is the header name for the trace ID
const TraceIDHeader = "X-Trace-ID"

// TraceIDContextKey is shared with handlers so error bodies carry the same ID
const TraceIDContextKey = handlers.TraceIDContextKey

var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID propagates a caller supplied trace ID or generates one, echoes it
// in the response header and carries it on the request context for audit entries
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if !traceIDPattern.MatchString(traceID) {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(c.Request().WithContext(services.WithTraceID(c.Request().Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns "unknown" when no trace ID was assigned
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok || traceID == "" {
		return "unknown"
	}
	return traceID
}
