package models

import "github.com/shopspring/decimal"

// CategorySummary contains aggregated record data for one category within a window
type CategorySummary struct {
	Category      string          `json:"category"`
	RecordCount   int             `json:"record_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageAmount decimal.Decimal `json:"average_amount"`
}
