package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	BudgetOperationSet    = "set"
	BudgetOperationAdjust = "adjust"
)

type budgetService struct {
	budgetRepo     repositories.BudgetRepositoryInterface
	expenseService ExpenseServiceInterface
	metrics        MetricsRecorderInterface
	audit          AuditLoggerInterface
	formatter      CurrencyFormatter
	defaultCeiling decimal.Decimal
}

func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	expenseService ExpenseServiceInterface,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
	formatter CurrencyFormatter,
	defaultCeiling decimal.Decimal,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:     budgetRepo,
		expenseService: expenseService,
		metrics:        metrics,
		audit:          audit,
		formatter:      formatter,
		defaultCeiling: defaultCeiling,
	}
}

func (s *budgetService) GetBudget(ctx context.Context, userID uuid.UUID) (*models.BudgetState, error) {
	session, err := s.openSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	state := session.State()
	s.metrics.IncrementCounter("budget.evaluated", map[string]string{"status": string(state.Status)})

	return &state, nil
}

func (s *budgetService) SetBudget(ctx context.Context, userID uuid.UUID, rawCeiling string) (*models.BudgetUpdate, error) {
	ceiling := ParseBudgetInput(rawCeiling)
	return s.mutate(ctx, userID, BudgetOperationSet, func(session *BudgetSession) models.BudgetUpdate {
		return session.Set(ceiling)
	})
}

func (s *budgetService) AdjustBudget(ctx context.Context, userID uuid.UUID, delta decimal.Decimal) (*models.BudgetUpdate, error) {
	return s.mutate(ctx, userID, BudgetOperationAdjust, func(session *BudgetSession) models.BudgetUpdate {
		return session.Adjust(delta)
	})
}

// mutate applies a ceiling change under the budget row lock. Spend is fetched first so a
// retrieval failure leaves the stored ceiling untouched.
func (s *budgetService) mutate(ctx context.Context, userID uuid.UUID, operation string, apply func(*BudgetSession) models.BudgetUpdate) (*models.BudgetUpdate, error) {
	totals, err := s.expenseService.GetTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		oldCeiling decimal.Decimal
		update     models.BudgetUpdate
	)
	_, err = s.budgetRepo.UpdateCeiling(ctx, userID, s.defaultCeiling, func(current decimal.Decimal) decimal.Decimal {
		session := NewBudgetSession(current, totals.Monthly.Total, s.formatter)
		oldCeiling = session.Ceiling()
		update = apply(session)
		return session.Ceiling()
	})
	if err != nil {
		slog.Error("failed to persist budget",
			"user_id", userID,
			"operation", operation,
			"error", err)
		return nil, fmt.Errorf("%w: %w", ErrBudgetSave, err)
	}

	s.audit.LogBudgetChange(ctx, userID, operation, oldCeiling, update.State.Ceiling)
	s.metrics.IncrementCounter("budget.updated", map[string]string{"operation": operation})
	s.metrics.IncrementCounter("budget.evaluated", map[string]string{"status": string(update.State.Status)})

	slog.Info("budget updated",
		"user_id", userID,
		"operation", operation,
		"ceiling", update.State.Ceiling.String(),
		"status", update.State.Status)

	return &update, nil
}

// openSession builds a request-scoped session from the stored ceiling and this month's spend.
// Both are loaded concurrently; a retrieval failure wins over a budget load failure.
func (s *budgetService) openSession(ctx context.Context, userID uuid.UUID) (*BudgetSession, error) {
	var (
		g          errgroup.Group
		totals     *models.ExpenseTotals
		ceiling    decimal.Decimal
		totalsErr  error
		ceilingErr error
	)

	g.Go(func() error {
		totals, totalsErr = s.expenseService.GetTotals(ctx, userID)
		return totalsErr
	})
	g.Go(func() error {
		ceiling, ceilingErr = s.loadCeiling(ctx, userID)
		return ceilingErr
	})
	_ = g.Wait()

	if totalsErr != nil {
		return nil, totalsErr
	}
	if ceilingErr != nil {
		return nil, ceilingErr
	}

	return NewBudgetSession(ceiling, totals.Monthly.Total, s.formatter), nil
}

func (s *budgetService) loadCeiling(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	budget, err := s.budgetRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return s.defaultCeiling, nil
		}
		slog.Error("failed to load budget",
			"user_id", userID,
			"error", err)
		return decimal.Zero, fmt.Errorf("failed to load budget: %w", err)
	}
	return budget.Ceiling, nil
}
