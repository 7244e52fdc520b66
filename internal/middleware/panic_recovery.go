package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"expense-tracker/internal/errors"
	"expense-tracker/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panic in a handler into a SYSTEM_001 response for that request only
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				slog.Error("Panic recovered",
					"trace_id", GetTraceID(c),
					"user_id", c.Get(handlers.UserIDContextKey),
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				if c.Response().Committed {
					return
				}
				if sendErr := handlers.SendError(c, errors.SystemInternalError); sendErr != nil {
					slog.Error("Failed to send panic recovery response",
						"trace_id", GetTraceID(c),
						"error", sendErr.Error(),
					)
				}
				err = nil
			}()

			return next(c)
		}
	}
}
