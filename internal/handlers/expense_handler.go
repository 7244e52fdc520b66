package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"expense-tracker/internal/dto"
	apierrors "expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/services"
	"expense-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// GetTotals returns daily, monthly and yearly totals for the authenticated user
//
// Method: GET /api/v1/expenses/totals
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - reference_time: instant the windows are anchored to
//   - daily, monthly, yearly, all: {total, count}
//   - skipped: records excluded as invalid
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 503: Records could not be retrieved; totals are unknown, not zero
func (h *ExpenseHandler) GetTotals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	totals, err := h.expenseService.GetTotals(c.Request().Context(), userID)
	if err != nil {
		return handleExpenseError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewExpenseTotalsResponse(totals),
	})
}

// GetRecords returns the records that fall into one window
//
// Method: GET /api/v1/expenses/records?window=daily|monthly|yearly|all
// Authentication: Required (JWT)
//
// Error Responses:
//   - 400: Unknown window
//   - 401: Unauthorized (missing JWT)
//   - 503: Records could not be retrieved
func (h *ExpenseHandler) GetRecords(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.RecordsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, apierrors.ExpenseInvalidWindow, apierrors.WithDetails(validation.FormatErrors(err)...))
	}

	window := strings.ToLower(query.Window)
	if window == "" {
		window = models.WindowMonthly
	}

	totals, err := h.expenseService.GetTotals(c.Request().Context(), userID)
	if err != nil {
		return handleExpenseError(c, err)
	}

	bucket, ok := totals.Bucket(window)
	if !ok {
		return SendError(c, apierrors.ExpenseInvalidWindow)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.RecordListResponse{
			Window:  window,
			Records: bucket.Records,
			Total:   bucket.Total,
			Count:   bucket.Count,
		},
		Meta: map[string]interface{}{
			"reference_time": totals.ReferenceTime,
			"skipped":        totals.Skipped,
		},
	})
}

// GetCategories breaks one window's spending down by category label
//
// Method: GET /api/v1/expenses/categories?window=daily|monthly|yearly|all
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - window: the window the records were selected by
//   - categories: [{category, record_count, total_amount, average_amount}], largest total first
//
// Error Responses:
//   - 400: Unknown window
//   - 401: Unauthorized (missing JWT)
//   - 503: Records could not be retrieved
func (h *ExpenseHandler) GetCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.RecordsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, apierrors.ExpenseInvalidWindow, apierrors.WithDetails(validation.FormatErrors(err)...))
	}

	window := strings.ToLower(query.Window)
	if window == "" {
		window = models.WindowMonthly
	}

	totals, err := h.expenseService.GetTotals(c.Request().Context(), userID)
	if err != nil {
		return handleExpenseError(c, err)
	}

	bucket, ok := totals.Bucket(window)
	if !ok {
		return SendError(c, apierrors.ExpenseInvalidWindow)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.CategoryBreakdownResponse{
			Window:     window,
			Categories: services.SummarizeByCategory(bucket.Records),
			Total:      bucket.Total,
		},
		Meta: map[string]interface{}{
			"reference_time": totals.ReferenceTime,
		},
	})
}

// handleExpenseError maps retrieval failures; a failure never renders as a zero total
func handleExpenseError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrOwnerUnauthenticated):
		return SendError(c, apierrors.AuthMissingToken)
	case services.IsRetrievalFailure(err):
		slog.Warn("expense totals unavailable",
			"trace_id", traceIDOf(c),
			"error", err)
		return SendError(c, apierrors.ExpenseRetrievalFailed)
	default:
		return SendSystemError(c, err)
	}
}
