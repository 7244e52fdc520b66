package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"expense-tracker/internal/dto"
	apierrors "expense-tracker/internal/errors"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/services"
	"expense-tracker/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultGeneratedRecords = 100
	defaultGeneratedDays    = 90
)

// DevHandler handles development-only endpoints
// These endpoints should only be registered in development environments
type DevHandler struct {
	recordRepo   repositories.RecordRepositoryInterface
	tokenService services.TokenServiceInterface
	generator    services.RecordGeneratorInterface
	now          func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	recordRepo repositories.RecordRepositoryInterface,
	tokenService services.TokenServiceInterface,
	generator services.RecordGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		recordRepo:   recordRepo,
		tokenService: tokenService,
		generator:    generator,
		now:          time.Now,
	}
}

// IssueToken signs an access token for an owner id
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Request Body: {"user_id": "<uuid, optional>", "email": "<optional>"}
//
// Success Response: 200 OK {access_token, token_type, expires_at, user_id}
//
// Error Responses:
//   - 400: Invalid user_id or email
//   - 500: Token could not be signed
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(validation.FormatErrors(err)...))
	}

	userID := uuid.New()
	if req.UserID != "" {
		userID = uuid.MustParse(req.UserID)
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(userID, req.Email)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
			UserID:      userID.String(),
		},
	})
}

// GenerateRecords stores demo expense records for the authenticated owner
//
// Method: POST /api/v1/dev/records/generate
// Authentication: Required (JWT)
// Environment: Development only
//
// Query parameters:
//   - count: Number of records to generate (default: 100, max: 1000)
//   - days: Days of history ending now (default: 90, max: 730)
//
// Success Response: 200 OK {records_created, start_date, end_date}
//
// Error Responses:
//   - 400: Invalid parameters
//   - 401: Unauthorized
func (h *DevHandler) GenerateRecords(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.GenerateRecordsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails(validation.FormatErrors(err)...))
	}
	if query.Count == 0 {
		query.Count = defaultGeneratedRecords
	}
	if query.Days == 0 {
		query.Days = defaultGeneratedDays
	}

	endDate := h.now().UTC()
	startDate := endDate.AddDate(0, 0, -query.Days)

	ctx := c.Request().Context()
	created := 0
	for _, record := range h.generator.GenerateRecords(userID, startDate, endDate, query.Count) {
		if err := h.recordRepo.Create(ctx, record); err != nil {
			slog.Warn("failed to store generated record", "user_id", userID, "error", err)
			continue
		}
		created++
	}

	slog.Info("generated demo records", "user_id", userID, "requested", query.Count, "created", created)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.GenerateRecordsResponse{
			RecordsCreated: created,
			StartDate:      startDate,
			EndDate:        endDate,
		},
	})
}

// ClearRecords removes every record of the authenticated owner
//
// Method: DELETE /api/v1/dev/records
// Authentication: Required (JWT)
// Environment: Development only
//
// Success Response: 200 OK {records_deleted}
func (h *DevHandler) ClearRecords(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	deleted, err := h.recordRepo.DeleteByUserID(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ClearRecordsResponse{RecordsDeleted: deleted},
	})
}
