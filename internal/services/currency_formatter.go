package services

import (
	"strings"

	"expense-tracker/internal/config"

	"github.com/shopspring/decimal"
)

// CurrencyFormatter renders whole-unit amounts for budget notifications
type CurrencyFormatter struct {
	Symbol   string
	Grouping string
}

// NewCurrencyFormatter builds a formatter from currency configuration
func NewCurrencyFormatter(cfg config.CurrencyConfig) CurrencyFormatter {
	return CurrencyFormatter{
		Symbol:   cfg.Symbol,
		Grouping: cfg.Grouping,
	}
}

// Format rounds to whole units, floors negatives at zero and groups digits.
// Indian grouping keeps the last three digits together and pairs the rest (12,34,567).
func (f CurrencyFormatter) Format(amount decimal.Decimal) string {
	amount = decimal.Max(decimal.Zero, amount).Round(0)
	return f.Symbol + groupDigits(amount.StringFixed(0), f.Grouping)
}

func groupDigits(digits, grouping string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	size := 3
	if grouping == config.GroupingIndian {
		size = 2
	}

	var groups []string
	for len(head) > size {
		groups = append([]string{head[len(head)-size:]}, groups...)
		head = head[:len(head)-size]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}
