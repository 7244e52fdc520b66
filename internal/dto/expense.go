package dto

import (
	"time"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// RecordsQuery selects which bucket GET /expenses/records returns
type RecordsQuery struct {
	Window string `query:"window" validate:"omitempty,expense_window"`
}

// BucketSummary is one window's total without its records
type BucketSummary struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// ExpenseTotalsResponse represents the response for GET /expenses/totals
type ExpenseTotalsResponse struct {
	ReferenceTime time.Time     `json:"reference_time"`
	Daily         BucketSummary `json:"daily"`
	Monthly       BucketSummary `json:"monthly"`
	Yearly        BucketSummary `json:"yearly"`
	All           BucketSummary `json:"all"`
	Skipped       int           `json:"skipped"`
}

// RecordListResponse represents the records of one window
type RecordListResponse struct {
	Window  string          `json:"window"`
	Records []models.Record `json:"records"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
}

// CategoryBreakdownResponse represents GET /expenses/categories
type CategoryBreakdownResponse struct {
	Window     string                   `json:"window"`
	Categories []models.CategorySummary `json:"categories"`
	Total      decimal.Decimal          `json:"total"`
}

func NewExpenseTotalsResponse(totals *models.ExpenseTotals) *ExpenseTotalsResponse {
	return &ExpenseTotalsResponse{
		ReferenceTime: totals.ReferenceTime,
		Daily:         summarize(totals.Daily),
		Monthly:       summarize(totals.Monthly),
		Yearly:        summarize(totals.Yearly),
		All:           summarize(totals.All),
		Skipped:       totals.Skipped,
	}
}

func summarize(bucket models.ExpenseBucket) BucketSummary {
	return BucketSummary{Total: bucket.Total, Count: bucket.Count}
}
