package services

import (
	"sort"
	"strings"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// SummarizeByCategory groups a bucket's records by category label. Records without a
// label count as Other. Summaries are ordered by total, largest first, then by name.
func SummarizeByCategory(records []models.Record) []models.CategorySummary {
	byCategory := make(map[string]*models.CategorySummary)

	for _, record := range records {
		category := strings.TrimSpace(record.Category)
		if category == "" {
			category = models.CategoryOther
		}

		summary, ok := byCategory[category]
		if !ok {
			summary = &models.CategorySummary{Category: category, TotalAmount: decimal.Zero}
			byCategory[category] = summary
		}
		summary.RecordCount++
		summary.TotalAmount = summary.TotalAmount.Add(record.Amount)
	}

	summaries := make([]models.CategorySummary, 0, len(byCategory))
	for _, summary := range byCategory {
		summary.AverageAmount = summary.TotalAmount.Div(decimal.NewFromInt(int64(summary.RecordCount))).Round(2)
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].TotalAmount.Equal(summaries[j].TotalAmount) {
			return summaries[i].TotalAmount.GreaterThan(summaries[j].TotalAmount)
		}
		return summaries[i].Category < summaries[j].Category
	})

	return summaries
}
