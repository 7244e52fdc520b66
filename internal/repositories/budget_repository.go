package repositories

import (
	"context"
	"errors"
	"fmt"

	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

// GetByUserID retrieves the stored budget of a user
func (r *budgetRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// UpdateCeiling replaces a user's ceiling with change(current) while holding the row lock,
// so concurrent updates for one user apply one after another. A user without a row starts
// from initial.
func (r *budgetRepository) UpdateCeiling(ctx context.Context, userID uuid.UUID, initial decimal.Decimal, change func(current decimal.Decimal) decimal.Decimal) (*models.Budget, error) {
	var budget models.Budget

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the row must exist before it can be locked
		seed := &models.Budget{UserID: userID, Ceiling: initial}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
			return translateConstraintError(err, models.ErrNegativeCeiling, models.ErrBudgetOwnerRequired)
		}

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&budget).Error
		if err != nil {
			return fmt.Errorf("failed to lock budget: %w", err)
		}

		budget.Ceiling = change(budget.Ceiling)
		if err := tx.Save(&budget).Error; err != nil {
			return translateConstraintError(err, models.ErrNegativeCeiling, models.ErrBudgetOwnerRequired)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return &budget, nil
}
