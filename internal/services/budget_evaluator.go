package services

import (
	"fmt"
	"strings"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// WarningRemainingRatio is the share of the ceiling left below which a budget is running low
	WarningRemainingRatio = decimal.NewFromFloat(0.30)

	oneHundred = decimal.NewFromInt(100)

	// MaxBudgetCeiling is the largest whole ceiling the budgets DECIMAL(15,2) column holds
	MaxBudgetCeiling = decimal.RequireFromString("9999999999999")
)

const (
	maxCeilingDigits = 13

	// longer input is not read as a number at all
	maxBudgetInputLen = 64

	// deltas smaller than a thousandth of a unit leave the ceiling alone
	minDeltaDigits = -2
)

// integerDigits counts the digits left of the decimal point without rescaling,
// so values like 1e10000000 cost nothing to inspect. Zero or less means |value| < 1.
func integerDigits(value decimal.Decimal) int64 {
	return int64(value.NumDigits()) + int64(value.Exponent())
}

// boundCeiling clamps value into [0, MaxBudgetCeiling]
func boundCeiling(value decimal.Decimal) decimal.Decimal {
	if !value.IsPositive() {
		return decimal.Zero
	}
	if integerDigits(value) > maxCeilingDigits {
		return MaxBudgetCeiling
	}
	return value
}

// EvaluateBudget derives remaining balance, percent used and status from a ceiling and spend.
// Negative spend is treated as zero.
func EvaluateBudget(ceiling, spent decimal.Decimal) models.BudgetState {
	spent = decimal.Max(decimal.Zero, spent)

	return models.BudgetState{
		Ceiling:     ceiling,
		Spent:       spent,
		Remaining:   decimal.Max(decimal.Zero, ceiling.Sub(spent)),
		PercentUsed: percentUsed(ceiling, spent),
		Status:      classifyBudget(ceiling, spent),
	}
}

// classifyBudget applies the rules in order; the first match wins
func classifyBudget(ceiling, spent decimal.Decimal) models.BudgetStatus {
	noCeiling := !ceiling.IsPositive()

	switch {
	case noCeiling && spent.IsPositive():
		return models.BudgetStatusOver
	case spent.GreaterThan(ceiling):
		return models.BudgetStatusOver
	case noCeiling:
		return models.BudgetStatusSafe
	}

	remainingRatio := ceiling.Sub(spent).Div(ceiling)
	if remainingRatio.LessThan(WarningRemainingRatio) {
		return models.BudgetStatusWarning
	}
	return models.BudgetStatusSafe
}

func percentUsed(ceiling, spent decimal.Decimal) int {
	if !ceiling.IsPositive() {
		return 0
	}

	// Round rounds half away from zero, which matches half-up for non-negative values
	percent := spent.Div(ceiling).Mul(oneHundred).Round(0)
	percent = decimal.Min(oneHundred, decimal.Max(decimal.Zero, percent))
	return int(percent.IntPart())
}

// ParseBudgetInput turns raw user input into a ceiling. Anything that is not a finite number
// of at most 64 characters becomes zero; numbers are floored to whole units and clamped
// into [0, MaxBudgetCeiling].
func ParseBudgetInput(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if len(raw) > maxBudgetInputLen {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}

	value = boundCeiling(value)
	if integerDigits(value) <= 0 {
		return decimal.Zero
	}
	return value.Floor()
}

// BudgetSession owns the ceiling for one user session. It is not safe for concurrent use;
// each request or session builds its own.
type BudgetSession struct {
	ceiling   decimal.Decimal
	spent     decimal.Decimal
	formatter CurrencyFormatter
}

// NewBudgetSession creates a session; the ceiling is clamped into [0, MaxBudgetCeiling]
func NewBudgetSession(ceiling, spent decimal.Decimal, formatter CurrencyFormatter) *BudgetSession {
	return &BudgetSession{
		ceiling:   boundCeiling(ceiling),
		spent:     spent,
		formatter: formatter,
	}
}

// State re-derives the budget state from the current ceiling and spend
func (s *BudgetSession) State() models.BudgetState {
	return EvaluateBudget(s.ceiling, s.spent)
}

// Ceiling returns the stored ceiling
func (s *BudgetSession) Ceiling() decimal.Decimal {
	return s.ceiling
}

// SetSpent replaces the spend figure. No notification is produced.
func (s *BudgetSession) SetSpent(spent decimal.Decimal) models.BudgetState {
	s.spent = spent
	return s.State()
}

// Set replaces the ceiling, clamping it into [0, MaxBudgetCeiling]
func (s *BudgetSession) Set(ceiling decimal.Decimal) models.BudgetUpdate {
	s.ceiling = boundCeiling(ceiling)
	return s.update()
}

// Adjust moves the ceiling by delta. The result is floored at zero and capped at
// MaxBudgetCeiling however many times it is applied.
func (s *BudgetSession) Adjust(delta decimal.Decimal) models.BudgetUpdate {
	switch digits := integerDigits(delta); {
	case delta.IsZero() || digits < minDeltaDigits:
		// ceiling unchanged
	case digits > maxCeilingDigits:
		// |delta| alone exceeds any storable ceiling
		s.ceiling = boundCeiling(delta)
	default:
		s.ceiling = boundCeiling(s.ceiling.Add(delta))
	}
	return s.update()
}

func (s *BudgetSession) update() models.BudgetUpdate {
	state := s.State()
	return models.BudgetUpdate{
		State:        state,
		Notification: s.notification(state),
	}
}

func (s *BudgetSession) notification(state models.BudgetState) string {
	return fmt.Sprintf("Budget updated to %s. Remaining %s.",
		s.formatter.Format(state.Ceiling),
		s.formatter.Format(state.Remaining))
}
