package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	WindowDaily   = "daily"
	WindowMonthly = "monthly"
	WindowYearly  = "yearly"
	WindowAll     = "all"
)

// ExpenseBucket holds the records selected by one calendar window and their sum
type ExpenseBucket struct {
	Records []Record        `json:"records"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
}

// ExpenseTotals is the result of one aggregation pass over a user's records.
// The daily, monthly and yearly buckets are overlapping views, not a partition.
type ExpenseTotals struct {
	ReferenceTime time.Time     `json:"reference_time"`
	Daily         ExpenseBucket `json:"daily"`
	Monthly       ExpenseBucket `json:"monthly"`
	Yearly        ExpenseBucket `json:"yearly"`
	All           ExpenseBucket `json:"all"`
	Skipped       int           `json:"skipped"`
}

// Bucket returns the bucket for a window name
func (t *ExpenseTotals) Bucket(window string) (*ExpenseBucket, bool) {
	switch window {
	case WindowDaily:
		return &t.Daily, true
	case WindowMonthly:
		return &t.Monthly, true
	case WindowYearly:
		return &t.Yearly, true
	case WindowAll:
		return &t.All, true
	default:
		return nil, false
	}
}

// IsValidWindow checks if the window name is known
func IsValidWindow(window string) bool {
	switch window {
	case WindowDaily, WindowMonthly, WindowYearly, WindowAll:
		return true
	default:
		return false
	}
}
