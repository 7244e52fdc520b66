package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/database"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/repositories/repository_mocks"
	"expense-tracker/internal/services"
	"expense-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	budgetRepo     *repository_mocks.MockBudgetRepositoryInterface
	expenseService *service_mocks.MockExpenseServiceInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
	audit          *service_mocks.MockAuditLoggerInterface
	service        services.BudgetServiceInterface
	userID         uuid.UUID
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.expenseService = service_mocks.NewMockExpenseServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.userID = uuid.New()

	formatter := services.NewCurrencyFormatter(config.CurrencyConfig{Symbol: "₹", Grouping: config.GroupingIndian})
	s.service = services.NewBudgetService(s.budgetRepo, s.expenseService, s.metrics, s.audit, formatter, decimal.NewFromInt(2000))
}

func (s *BudgetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetServiceTestSuite) monthlySpend(amount int64) *models.ExpenseTotals {
	return &models.ExpenseTotals{
		ReferenceTime: time.Now(),
		Monthly: models.ExpenseBucket{
			Records: []models.Record{{ID: uuid.New(), UserID: s.userID, Text: gofakeit.Sentence(2), Amount: decimal.NewFromInt(amount), Date: time.Now()}},
			Total:   decimal.NewFromInt(amount),
			Count:   1,
		},
	}
}

func (s *BudgetServiceTestSuite) storedCeiling(ceiling int64) {
	s.budgetRepo.EXPECT().GetByUserID(s.ctx, s.userID).Return(&models.Budget{
		UserID:  s.userID,
		Ceiling: decimal.NewFromInt(ceiling),
	}, nil)
}

func (s *BudgetServiceTestSuite) TestGetBudget_DefaultCeilingWhenNoneStored() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(s.monthlySpend(0), nil)
	s.budgetRepo.EXPECT().GetByUserID(s.ctx, s.userID).Return(nil, repositories.ErrBudgetNotFound)
	s.metrics.EXPECT().IncrementCounter("budget.evaluated", map[string]string{"status": "safe"})

	state, err := s.service.GetBudget(s.ctx, s.userID)

	s.Require().NoError(err)
	s.True(decimal.NewFromInt(2000).Equal(state.Ceiling))
	s.True(decimal.NewFromInt(2000).Equal(state.Remaining))
	s.Equal(0, state.PercentUsed)
	s.Equal(models.BudgetStatusSafe, state.Status)
}

func (s *BudgetServiceTestSuite) TestGetBudget_RunningLow() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(s.monthlySpend(1500), nil)
	s.storedCeiling(2000)
	s.metrics.EXPECT().IncrementCounter("budget.evaluated", map[string]string{"status": "warning"})

	state, err := s.service.GetBudget(s.ctx, s.userID)

	s.Require().NoError(err)
	s.True(decimal.NewFromInt(500).Equal(state.Remaining))
	s.Equal(75, state.PercentUsed)
	s.Equal(models.BudgetStatusWarning, state.Status)
}

func (s *BudgetServiceTestSuite) TestGetBudget_OverBudget() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(s.monthlySpend(2500), nil)
	s.storedCeiling(2000)
	s.metrics.EXPECT().IncrementCounter("budget.evaluated", map[string]string{"status": "over"})

	state, err := s.service.GetBudget(s.ctx, s.userID)

	s.Require().NoError(err)
	s.True(state.Remaining.IsZero())
	s.Equal(100, state.PercentUsed)
	s.Equal(models.BudgetStatusOver, state.Status)
}

func (s *BudgetServiceTestSuite) TestGetBudget_RetrievalFailureIsNotZeroSpend() {
	retrievalErr := &services.RetrievalError{UserID: s.userID, Err: errors.New("timeout")}
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(nil, retrievalErr)
	s.storedCeiling(2000)

	state, err := s.service.GetBudget(s.ctx, s.userID)

	s.Nil(state)
	s.True(services.IsRetrievalFailure(err))
}

func (s *BudgetServiceTestSuite) TestGetBudget_BudgetLoadFailure() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(s.monthlySpend(10), nil)
	s.budgetRepo.EXPECT().GetByUserID(s.ctx, s.userID).Return(nil, errors.New("db down"))

	state, err := s.service.GetBudget(s.ctx, s.userID)

	s.Nil(state)
	s.Error(err)
	s.Contains(err.Error(), "failed to load budget")
}

// expectLockedUpdate has the repository apply the change to a stored ceiling and
// returns where the written value ends up
func (s *BudgetServiceTestSuite) expectLockedUpdate(stored int64) *decimal.Decimal {
	written := new(decimal.Decimal)
	s.budgetRepo.EXPECT().UpdateCeiling(s.ctx, s.userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID uuid.UUID, initial decimal.Decimal, change func(decimal.Decimal) decimal.Decimal) (*models.Budget, error) {
			s.True(decimal.NewFromInt(2000).Equal(initial), "default ceiling seeds new rows")
			*written = change(decimal.NewFromInt(stored))
			return &models.Budget{UserID: userID, Ceiling: *written}, nil
		})
	return written
}

func (s *BudgetServiceTestSuite) TestSetBudget_PersistsParsedCeiling() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(s.monthlySpend(1200), nil)
	written := s.expectLockedUpdate(2000)
	s.audit.EXPECT().LogBudgetChange(s.ctx, s.userID, services.BudgetOperationSet, gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ uuid.UUID, _ string, oldCeiling, newCeiling decimal.Decimal) {
			s.True(decimal.NewFromInt(2000).Equal(oldCeiling))
			s.True(decimal.NewFromInt(5000).Equal(newCeiling))
		})
	s.metrics.EXPECT().IncrementCounter("budget.updated", map[string]string{"operation": services.BudgetOperationSet})
	s.metrics.EXPECT().IncrementCounter("budget.evaluated", map[string]string{"status": "safe"})

	update, err := s.service.SetBudget(s.ctx, s.userID, "5000.75")

	s.Require().NoError(err)
	s.True(decimal.NewFromInt(5000).Equal(*written))
	s.True(decimal.NewFromInt(3800).Equal(update.State.Remaining))
	s.Equal("Budget updated to ₹5,000. Remaining ₹3,800.", update.Notification)
}

func (s *BudgetServiceTestSuite) TestSetBudget_InvalidInputBecomesZero() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(s.monthlySpend(0), nil)
	written := s.expectLockedUpdate(2000)
	s.audit.EXPECT().LogBudgetChange(s.ctx, s.userID, services.BudgetOperationSet, gomock.Any(), gomock.Any())
	s.metrics.EXPECT().IncrementCounter("budget.updated", map[string]string{"operation": services.BudgetOperationSet})
	s.metrics.EXPECT().IncrementCounter("budget.evaluated", map[string]string{"status": "safe"})

	update, err := s.service.SetBudget(s.ctx, s.userID, gofakeit.Word())

	s.Require().NoError(err)
	s.True(written.IsZero())
	s.True(update.State.Ceiling.IsZero())
	s.Equal("Budget updated to ₹0. Remaining ₹0.", update.Notification)
}

func (s *BudgetServiceTestSuite) TestSetBudget_OversizedInputIsCapped() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(s.monthlySpend(0), nil)
	written := s.expectLockedUpdate(2000)
	s.audit.EXPECT().LogBudgetChange(s.ctx, s.userID, services.BudgetOperationSet, gomock.Any(), gomock.Any())
	s.metrics.EXPECT().IncrementCounter("budget.updated", map[string]string{"operation": services.BudgetOperationSet})
	s.metrics.EXPECT().IncrementCounter("budget.evaluated", map[string]string{"status": "safe"})

	start := time.Now()
	update, err := s.service.SetBudget(s.ctx, s.userID, "1e10000000")

	s.Require().NoError(err)
	s.Less(time.Since(start), 250*time.Millisecond)
	s.True(services.MaxBudgetCeiling.Equal(*written))
	s.True(services.MaxBudgetCeiling.Equal(update.State.Ceiling))
}

func (s *BudgetServiceTestSuite) TestAdjustBudget_AddsDelta() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(s.monthlySpend(500), nil)
	written := s.expectLockedUpdate(2000)
	s.audit.EXPECT().LogBudgetChange(s.ctx, s.userID, services.BudgetOperationAdjust, gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ uuid.UUID, _ string, oldCeiling, newCeiling decimal.Decimal) {
			s.True(decimal.NewFromInt(2000).Equal(oldCeiling))
			s.True(decimal.NewFromInt(3000).Equal(newCeiling))
		})
	s.metrics.EXPECT().IncrementCounter("budget.updated", map[string]string{"operation": services.BudgetOperationAdjust})
	s.metrics.EXPECT().IncrementCounter("budget.evaluated", map[string]string{"status": "safe"})

	update, err := s.service.AdjustBudget(s.ctx, s.userID, decimal.NewFromInt(1000))

	s.Require().NoError(err)
	s.True(decimal.NewFromInt(3000).Equal(*written))
	s.True(decimal.NewFromInt(3000).Equal(update.State.Ceiling))
	s.Equal("Budget updated to ₹3,000. Remaining ₹2,500.", update.Notification)
}

func (s *BudgetServiceTestSuite) TestAdjustBudget_FloorsAtZero() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(s.monthlySpend(0), nil)
	written := s.expectLockedUpdate(300)
	s.audit.EXPECT().LogBudgetChange(s.ctx, s.userID, services.BudgetOperationAdjust, gomock.Any(), gomock.Any())
	s.metrics.EXPECT().IncrementCounter("budget.updated", map[string]string{"operation": services.BudgetOperationAdjust})
	s.metrics.EXPECT().IncrementCounter("budget.evaluated", map[string]string{"status": "safe"})

	update, err := s.service.AdjustBudget(s.ctx, s.userID, decimal.NewFromInt(-500))

	s.Require().NoError(err)
	s.True(written.IsZero())
	s.True(update.State.Ceiling.IsZero())
}

func (s *BudgetServiceTestSuite) TestAdjustBudget_CapsAtMaximum() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(s.monthlySpend(0), nil)
	written := s.expectLockedUpdate(9_999_999_000_000)
	s.audit.EXPECT().LogBudgetChange(s.ctx, s.userID, services.BudgetOperationAdjust, gomock.Any(), gomock.Any())
	s.metrics.EXPECT().IncrementCounter("budget.updated", map[string]string{"operation": services.BudgetOperationAdjust})
	s.metrics.EXPECT().IncrementCounter("budget.evaluated", map[string]string{"status": "safe"})

	_, err := s.service.AdjustBudget(s.ctx, s.userID, decimal.NewFromInt(1_000_000_000))

	s.Require().NoError(err)
	s.True(services.MaxBudgetCeiling.Equal(*written), "got %s", written)
}

func (s *BudgetServiceTestSuite) TestAdjustBudget_SaveFailure() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(s.monthlySpend(0), nil)
	s.budgetRepo.EXPECT().UpdateCeiling(s.ctx, s.userID, gomock.Any(), gomock.Any()).Return(nil, errors.New("constraint violation"))

	update, err := s.service.AdjustBudget(s.ctx, s.userID, decimal.NewFromInt(500))

	s.Nil(update)
	s.ErrorIs(err, services.ErrBudgetSave)
}

func (s *BudgetServiceTestSuite) TestAdjustBudget_RetrievalFailureLeavesCeilingUntouched() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(nil, &services.RetrievalError{UserID: s.userID, Err: services.ErrStoreUnavailable})

	update, err := s.service.AdjustBudget(s.ctx, s.userID, decimal.NewFromInt(500))

	s.Nil(update)
	s.ErrorIs(err, services.ErrStoreUnavailable)
}

func (s *BudgetServiceTestSuite) TestGetBudget_RetrievalFailureWinsOverLoadFailure() {
	s.expenseService.EXPECT().GetTotals(s.ctx, s.userID).Return(nil, &services.RetrievalError{UserID: s.userID, Err: errors.New("timeout")})
	s.budgetRepo.EXPECT().GetByUserID(s.ctx, s.userID).Return(nil, errors.New("db down"))

	state, err := s.service.GetBudget(s.ctx, s.userID)

	s.Nil(state)
	s.True(services.IsRetrievalFailure(err))
}

func TestBudgetService_ConcurrentAdjustmentsAreNotLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := database.SetupTestDB(t)
	userID := uuid.New()

	expenseService := service_mocks.NewMockExpenseServiceInterface(ctrl)
	expenseService.EXPECT().GetTotals(gomock.Any(), userID).Return(&models.ExpenseTotals{ReferenceTime: time.Now()}, nil).AnyTimes()
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	audit := service_mocks.NewMockAuditLoggerInterface(ctrl)
	audit.EXPECT().LogBudgetChange(gomock.Any(), userID, services.BudgetOperationAdjust, gomock.Any(), gomock.Any()).Times(10)

	formatter := services.NewCurrencyFormatter(config.CurrencyConfig{Symbol: "₹", Grouping: config.GroupingIndian})
	service := services.NewBudgetService(repositories.NewBudgetRepository(db.DB), expenseService, metrics, audit, formatter, decimal.NewFromInt(2000))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.AdjustBudget(context.Background(), userID, decimal.NewFromInt(500))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := repositories.NewBudgetRepository(db.DB).GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7000).Equal(stored.Ceiling), "got %s", stored.Ceiling)
}
