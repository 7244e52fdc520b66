package repositories

import (
	"context"
	"time"

	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordRepositoryInterface defines the contract for expense record storage
type RecordRepositoryInterface interface {
	Create(ctx context.Context, record *models.Record) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Record, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Record, error)
	GetByUserIDAndDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]models.Record, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

// BudgetRepositoryInterface defines the contract for persisted budget ceilings
type BudgetRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Budget, error)
	UpdateCeiling(ctx context.Context, userID uuid.UUID, initial decimal.Decimal, change func(current decimal.Decimal) decimal.Decimal) (*models.Budget, error)
}
