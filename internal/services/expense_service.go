package services

import (
	"context"
	"log/slog"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
)

type expenseService struct {
	recordRepo repositories.RecordRepositoryInterface
	breaker    StoreBreakerInterface
	metrics    MetricsRecorderInterface
	clock      Clock
	location   *time.Location
}

func NewExpenseService(
	recordRepo repositories.RecordRepositoryInterface,
	breaker StoreBreakerInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
	location *time.Location,
) ExpenseServiceInterface {
	if clock == nil {
		clock = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &expenseService{
		recordRepo: recordRepo,
		breaker:    breaker,
		metrics:    metrics,
		clock:      clock,
		location:   location,
	}
}

func (s *expenseService) GetTotals(ctx context.Context, userID uuid.UUID) (*models.ExpenseTotals, error) {
	return s.GetTotalsAt(ctx, userID, s.clock().In(s.location))
}

func (s *expenseService) GetTotalsAt(ctx context.Context, userID uuid.UUID, reference time.Time) (*models.ExpenseTotals, error) {
	records, err := s.fetchRecords(ctx, userID)
	if err != nil {
		s.metrics.IncrementCounter("expense.aggregation", map[string]string{"status": "retrieval_failed"})
		return nil, err
	}

	start := time.Now()
	totals := AggregateExpenses(records, reference)
	s.metrics.RecordProcessingTime("expense.aggregation", time.Since(start))
	s.metrics.IncrementCounter("expense.aggregation", map[string]string{"status": "success"})

	if totals.Skipped > 0 {
		s.metrics.AddCounter("expense.records.skipped", float64(totals.Skipped), nil)
		slog.Warn("records excluded from aggregation",
			"user_id", userID,
			"skipped", totals.Skipped,
			"record_count", len(records))
	}

	slog.Debug("expense totals aggregated",
		"user_id", userID,
		"reference", reference.Format(time.RFC3339),
		"daily_total", totals.Daily.Total.String(),
		"monthly_total", totals.Monthly.Total.String(),
		"yearly_total", totals.Yearly.Total.String())

	return totals, nil
}

// fetchRecords is the only path to the record store; every failure comes back as a RetrievalError
func (s *expenseService) fetchRecords(ctx context.Context, userID uuid.UUID) ([]models.Record, error) {
	if userID == uuid.Nil {
		slog.Warn("record retrieval attempted without an owner")
		return nil, &RetrievalError{UserID: userID, Err: ErrOwnerUnauthenticated}
	}

	if err := s.breaker.Allow(); err != nil {
		slog.Warn("record store breaker rejected retrieval",
			"user_id", userID)
		return nil, &RetrievalError{UserID: userID, Err: err}
	}

	records, err := s.recordRepo.GetByUserID(ctx, userID)
	if err != nil && ctx.Err() != nil {
		// the caller gave up; says nothing about the store's health
		s.breaker.Abandon()
		slog.Warn("record retrieval cancelled",
			"user_id", userID,
			"error", err)
		return nil, &RetrievalError{UserID: userID, Err: err}
	}
	if err != nil {
		s.breaker.RecordFailure()
		s.metrics.RecordGauge("store.breaker.state", float64(s.breaker.State()), map[string]string{"store": "records"})
		slog.Error("failed to fetch records",
			"user_id", userID,
			"error", err)
		return nil, &RetrievalError{UserID: userID, Err: err}
	}

	s.breaker.RecordSuccess()
	s.metrics.RecordGauge("store.breaker.state", float64(s.breaker.State()), map[string]string{"store": "records"})
	slog.Debug("records fetched",
		"user_id", userID,
		"record_count", len(records))

	return records, nil
}
