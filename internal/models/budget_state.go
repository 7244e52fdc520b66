package models

import "github.com/shopspring/decimal"

// BudgetStatus classifies spend relative to the ceiling
type BudgetStatus string

const (
	BudgetStatusSafe    BudgetStatus = "safe"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over"
)

// budgetStatusLabels are the display labels shown next to the status badge
var budgetStatusLabels = map[BudgetStatus]string{
	BudgetStatusSafe:    "On track",
	BudgetStatusWarning: "Running low",
	BudgetStatusOver:    "Over budget",
}

// Label returns the human readable label for the status
func (s BudgetStatus) Label() string {
	if label, ok := budgetStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// BudgetState is derived from a ceiling and a spend figure; only the ceiling is ever stored
type BudgetState struct {
	Ceiling     decimal.Decimal `json:"ceiling"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed int             `json:"percent_used"`
	Status      BudgetStatus    `json:"status"`
}

// BudgetUpdate is returned by every ceiling mutation
type BudgetUpdate struct {
	State        BudgetState `json:"state"`
	Notification string      `json:"notification"`
}
