package handlers

import (
	"errors"
	"net/http"

	"expense-tracker/internal/dto"
	apierrors "expense-tracker/internal/errors"
	"expense-tracker/internal/services"
	"expense-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GetBudget evaluates the stored ceiling against this month's spend
//
// Method: GET /api/v1/budget
// Authentication: Required (JWT)
//
// Success Response: 200 OK {ceiling, spent, remaining, percent_used, status, status_label}
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 503: Records could not be retrieved
//   - 500: Budget could not be loaded
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	state, err := h.budgetService.GetBudget(c.Request().Context(), userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewBudgetResponse(*state),
	})
}

// SetBudget replaces the ceiling. Non-numeric input sets the ceiling to zero.
//
// Method: PUT /api/v1/budget
// Authentication: Required (JWT)
//
// Request Body: {"budget": "<raw input>"}
//
// Success Response: 200 OK, budget fields plus notification
//
// Error Responses:
//   - 400: Missing budget field or malformed JSON
//   - 401: Unauthorized (missing JWT)
//   - 503: Records could not be retrieved
//   - 500: Budget could not be saved
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails(validation.FormatErrors(err)...))
	}

	update, err := h.budgetService.SetBudget(c.Request().Context(), userID, req.RawValue())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewBudgetUpdateResponse(*update),
		Message: update.Notification,
	})
}

// AdjustBudget moves the ceiling by a delta, flooring at zero
//
// Method: POST /api/v1/budget/adjust
// Authentication: Required (JWT)
//
// Request Body: {"delta": 500}
//
// Error Responses:
//   - 400: Delta is not a whole number
//   - 401: Unauthorized (missing JWT)
//   - 503: Records could not be retrieved
//   - 500: Budget could not be saved
func (h *BudgetHandler) AdjustBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.AdjustBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.BudgetInvalidAdjustment, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.BudgetInvalidAdjustment, apierrors.WithDetails(validation.FormatErrors(err)...))
	}

	update, err := h.budgetService.AdjustBudget(c.Request().Context(), userID, req.DeltaValue())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewBudgetUpdateResponse(*update),
		Message: update.Notification,
	})
}

func (h *BudgetHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case services.IsRetrievalFailure(err):
		return handleExpenseError(c, err)
	case errors.Is(err, services.ErrBudgetSave):
		return SendError(c, apierrors.BudgetSaveFailed)
	default:
		return SendSystemError(c, err)
	}
}
