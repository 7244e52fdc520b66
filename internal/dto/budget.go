package dto

import (
	"bytes"
	"encoding/json"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// SetBudgetRequest carries raw user input; anything that is not a number becomes a zero ceiling
type SetBudgetRequest struct {
	Budget json.RawMessage `json:"budget" validate:"required"`
}

// RawValue returns the budget as typed by the user, unquoting JSON strings
func (r SetBudgetRequest) RawValue() string {
	raw := bytes.TrimSpace(r.Budget)
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// AdjustBudgetRequest moves the ceiling by a whole-unit delta, e.g. the +500 and +1000 quick actions
type AdjustBudgetRequest struct {
	Delta json.Number `json:"delta" validate:"required,budget_delta"`
}

// DeltaValue returns the validated delta
func (r AdjustBudgetRequest) DeltaValue() decimal.Decimal {
	return decimal.RequireFromString(r.Delta.String())
}

// BudgetResponse represents the evaluated budget
type BudgetResponse struct {
	Ceiling     decimal.Decimal     `json:"ceiling"`
	Spent       decimal.Decimal     `json:"spent"`
	Remaining   decimal.Decimal     `json:"remaining"`
	PercentUsed int                 `json:"percent_used"`
	Status      models.BudgetStatus `json:"status"`
	StatusLabel string              `json:"status_label"`
}

// BudgetUpdateResponse adds the notification produced by a ceiling change
type BudgetUpdateResponse struct {
	BudgetResponse
	Notification string `json:"notification"`
}

func NewBudgetResponse(state models.BudgetState) BudgetResponse {
	return BudgetResponse{
		Ceiling:     state.Ceiling,
		Spent:       state.Spent,
		Remaining:   state.Remaining,
		PercentUsed: state.PercentUsed,
		Status:      state.Status,
		StatusLabel: state.Status.Label(),
	}
}

func NewBudgetUpdateResponse(update models.BudgetUpdate) BudgetUpdateResponse {
	return BudgetUpdateResponse{
		BudgetResponse: NewBudgetResponse(update.State),
		Notification:   update.Notification,
	}
}
