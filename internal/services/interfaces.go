package services

import (
	"context"
	"time"

	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseServiceInterface fetches a user's records and buckets them by calendar window
type ExpenseServiceInterface interface {
	// GetTotals aggregates against the current time in the configured location
	GetTotals(ctx context.Context, userID uuid.UUID) (*models.ExpenseTotals, error)

	// GetTotalsAt aggregates against an explicit reference instant
	GetTotalsAt(ctx context.Context, userID uuid.UUID, reference time.Time) (*models.ExpenseTotals, error)
}

// BudgetServiceInterface evaluates and updates a user's budget against the current month's spend
type BudgetServiceInterface interface {
	GetBudget(ctx context.Context, userID uuid.UUID) (*models.BudgetState, error)
	SetBudget(ctx context.Context, userID uuid.UUID, rawCeiling string) (*models.BudgetUpdate, error)
	AdjustBudget(ctx context.Context, userID uuid.UUID, delta decimal.Decimal) (*models.BudgetUpdate, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	AddCounter(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type StoreBreakerInterface interface {
	Allow() error
	RecordSuccess()
	RecordFailure()
	Abandon()
	State() BreakerState
}

// AuditLoggerInterface writes structured audit entries for state changes worth keeping
type AuditLoggerInterface interface {
	LogBudgetChange(ctx context.Context, userID uuid.UUID, operation string, oldCeiling, newCeiling decimal.Decimal)
	LogBreakerStateChange(ctx context.Context, store string, oldState, newState BreakerState)
}

// RecordGeneratorInterface produces demo expense records for development data
type RecordGeneratorInterface interface {
	GenerateRecords(userID uuid.UUID, startDate, endDate time.Time, count int) []*models.Record
}

// Clock returns the current instant; injected so aggregation can be pinned in tests
type Clock func() time.Time
