package services

import (
	"log/slog"
	"time"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// AggregateExpenses buckets records into daily, monthly and yearly views anchored to reference.
//
// Calendar fields of every record are read in reference's location, so the caller picks the
// time zone by choosing the location of reference. Records dated later than reference are
// still counted when their day, month or year matches. Records that fail
// ValidateForAggregation are left out of every bucket and counted in Skipped.
//
// The input slice is not modified and the result shares no state with earlier calls.
func AggregateExpenses(records []models.Record, reference time.Time) *models.ExpenseTotals {
	loc := reference.Location()
	refYear, refMonth, refDay := reference.Date()

	totals := &models.ExpenseTotals{
		ReferenceTime: reference,
		Daily:         newExpenseBucket(),
		Monthly:       newExpenseBucket(),
		Yearly:        newExpenseBucket(),
		All:           newExpenseBucket(),
	}

	for i := range records {
		record := records[i]

		if err := record.ValidateForAggregation(); err != nil {
			totals.Skipped++
			slog.Warn("skipping record during aggregation",
				"record_id", record.ID,
				"user_id", record.UserID,
				"error", err)
			continue
		}

		year, month, day := record.Date.In(loc).Date()

		addToBucket(&totals.All, record)

		if year != refYear {
			continue
		}
		addToBucket(&totals.Yearly, record)

		if month != refMonth {
			continue
		}
		addToBucket(&totals.Monthly, record)

		if day == refDay {
			addToBucket(&totals.Daily, record)
		}
	}

	return totals
}

func newExpenseBucket() models.ExpenseBucket {
	return models.ExpenseBucket{
		Records: []models.Record{},
		Total:   decimal.Zero,
	}
}

func addToBucket(bucket *models.ExpenseBucket, record models.Record) {
	bucket.Records = append(bucket.Records, record)
	bucket.Total = bucket.Total.Add(record.Amount)
	bucket.Count++
}
