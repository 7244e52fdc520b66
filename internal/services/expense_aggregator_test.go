package services

import (
	"testing"
	"time"

	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(amount string, date time.Time) models.Record {
	return models.Record{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Text:     "expense",
		Category: "general",
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
	}
}

func assertTotal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestAggregateExpenses_CalendarBuckets(t *testing.T) {
	reference := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	records := []models.Record{
		record("100", time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)),
		record("50", time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)),
		record("200", time.Date(2023, time.March, 15, 9, 0, 0, 0, time.UTC)),
	}

	totals := AggregateExpenses(records, reference)

	assertTotal(t, "100", totals.Daily.Total)
	assertTotal(t, "150", totals.Monthly.Total)
	assertTotal(t, "150", totals.Yearly.Total)
	assertTotal(t, "350", totals.All.Total)
	assert.Equal(t, 1, totals.Daily.Count)
	assert.Equal(t, 2, totals.Monthly.Count)
	assert.Equal(t, 2, totals.Yearly.Count)
	assert.Equal(t, 0, totals.Skipped)
	assert.Equal(t, reference, totals.ReferenceTime)
}

func TestAggregateExpenses_Boundaries(t *testing.T) {
	reference := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		daily   bool
		monthly bool
		yearly  bool
	}{
		{name: "start of day", date: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), daily: true, monthly: true, yearly: true},
		{name: "end of day", date: time.Date(2024, time.March, 15, 23, 59, 59, 999999999, time.UTC), daily: true, monthly: true, yearly: true},
		{name: "previous day", date: time.Date(2024, time.March, 14, 23, 59, 59, 0, time.UTC), monthly: true, yearly: true},
		{name: "same day previous month", date: time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC), yearly: true},
		{name: "same day and month previous year", date: time.Date(2023, time.March, 15, 10, 0, 0, 0, time.UTC)},
		{name: "last instant of previous year", date: time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC)},
		{name: "future day same month", date: time.Date(2024, time.March, 28, 10, 0, 0, 0, time.UTC), monthly: true, yearly: true},
		{name: "future month same year", date: time.Date(2024, time.November, 2, 10, 0, 0, 0, time.UTC), yearly: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := AggregateExpenses([]models.Record{record("10", tt.date)}, reference)

			assert.Equal(t, tt.daily, totals.Daily.Count == 1, "daily")
			assert.Equal(t, tt.monthly, totals.Monthly.Count == 1, "monthly")
			assert.Equal(t, tt.yearly, totals.Yearly.Count == 1, "yearly")
			assert.Equal(t, 1, totals.All.Count)
		})
	}
}

func TestAggregateExpenses_NestedBuckets(t *testing.T) {
	reference := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	var records []models.Record
	for day := 1; day <= 30; day++ {
		records = append(records, record("1.25", time.Date(2024, time.June, day, 8, 0, 0, 0, time.UTC)))
		records = append(records, record("3", time.Date(2024, time.Month(day%12+1), 5, 8, 0, 0, 0, time.UTC)))
	}

	totals := AggregateExpenses(records, reference)

	assert.True(t, totals.Daily.Total.LessThanOrEqual(totals.Monthly.Total))
	assert.True(t, totals.Monthly.Total.LessThanOrEqual(totals.Yearly.Total))
	assert.True(t, totals.Yearly.Total.LessThanOrEqual(totals.All.Total))
	assert.LessOrEqual(t, totals.Daily.Count, totals.Monthly.Count)
	assert.LessOrEqual(t, totals.Monthly.Count, totals.Yearly.Count)
}

func TestAggregateExpenses_EmptyInput(t *testing.T) {
	totals := AggregateExpenses(nil, time.Now())

	require.NotNil(t, totals)
	assert.True(t, totals.Daily.Total.IsZero())
	assert.True(t, totals.Monthly.Total.IsZero())
	assert.True(t, totals.Yearly.Total.IsZero())
	assert.NotNil(t, totals.Daily.Records)
	assert.Empty(t, totals.Daily.Records)
}

func TestAggregateExpenses_Idempotent(t *testing.T) {
	reference := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	records := []models.Record{
		record("19.99", reference),
		record("5.01", reference.AddDate(0, 0, -3)),
		record("42", reference.AddDate(-1, 0, 0)),
	}
	snapshot := append([]models.Record(nil), records...)

	first := AggregateExpenses(records, reference)
	second := AggregateExpenses(records, reference)

	assertTotal(t, first.Daily.Total.String(), second.Daily.Total)
	assertTotal(t, first.Monthly.Total.String(), second.Monthly.Total)
	assertTotal(t, first.Yearly.Total.String(), second.Yearly.Total)
	assert.Equal(t, snapshot, records)

	first.Daily.Records[0].Amount = decimal.NewFromInt(9999)
	assertTotal(t, "19.99", second.Daily.Records[0].Amount)
	assertTotal(t, "19.99", records[0].Amount)
}

func TestAggregateExpenses_SkipsInvalidRecords(t *testing.T) {
	reference := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	records := []models.Record{
		record("100", reference),
		record("-5", reference),
		record("30", time.Time{}),
		record("20", reference),
	}

	totals := AggregateExpenses(records, reference)

	assert.Equal(t, 2, totals.Skipped)
	assertTotal(t, "120", totals.Daily.Total)
	assert.Equal(t, 2, totals.All.Count)
}

func TestAggregateExpenses_UsesReferenceLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:00 UTC on the 14th is 01:30 on the 15th in Kolkata
	spentAt := time.Date(2024, time.March, 14, 20, 0, 0, 0, time.UTC)
	records := []models.Record{record("75", spentAt)}

	inUTC := AggregateExpenses(records, time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC))
	inKolkata := AggregateExpenses(records, time.Date(2024, time.March, 15, 9, 0, 0, 0, kolkata))

	assert.Equal(t, 0, inUTC.Daily.Count)
	assert.Equal(t, 1, inKolkata.Daily.Count)
	assertTotal(t, "75", inKolkata.Daily.Total)
}

func TestAggregateExpenses_NewYearAcrossZones(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:00 UTC on Jan 1 is still Dec 31 in New York
	spentAt := time.Date(2025, time.January, 1, 2, 0, 0, 0, time.UTC)
	reference := time.Date(2024, time.December, 31, 12, 0, 0, 0, newYork)

	totals := AggregateExpenses([]models.Record{record("10", spentAt)}, reference)

	assert.Equal(t, 1, totals.Daily.Count)
	assert.Equal(t, 1, totals.Yearly.Count)
}

func TestExpenseTotals_Bucket(t *testing.T) {
	totals := AggregateExpenses([]models.Record{record("10", time.Now())}, time.Now())

	for _, window := range []string{models.WindowDaily, models.WindowMonthly, models.WindowYearly, models.WindowAll} {
		bucket, ok := totals.Bucket(window)
		require.True(t, ok, window)
		assert.Equal(t, 1, bucket.Count, window)
	}

	_, ok := totals.Bucket("weekly")
	assert.False(t, ok)
}

func BenchmarkAggregateExpenses(b *testing.B) {
	reference := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	records := make([]models.Record, 10000)
	for i := range records {
		records[i] = record("12.50", reference.Add(-time.Duration(i)*time.Hour))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AggregateExpenses(records, reference)
	}
}
