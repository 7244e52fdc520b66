package handlers

import (
	"context"
	"net/http"
	"time"

	"expense-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// DatabasePinger reports database reachability
type DatabasePinger interface {
	HealthCheck(ctx context.Context) error
}

type HealthCheckHandler struct {
	db DatabasePinger
}

func NewHealthCheckHandler(db DatabasePinger) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports API and database status
//
// Method: GET /health
// Authentication: none
//
// Success Response: 200 OK {status, time}
// Error Responses:
//   - 503: SYSTEM_003 database unreachable
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
