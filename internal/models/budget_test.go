package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_Validate(t *testing.T) {
	assert.NoError(t, (&Budget{UserID: uuid.New(), Ceiling: decimal.NewFromInt(2000)}).Validate())
	assert.NoError(t, (&Budget{UserID: uuid.New()}).Validate())
	assert.ErrorIs(t, (&Budget{Ceiling: decimal.NewFromInt(2000)}).Validate(), ErrBudgetOwnerRequired)
	assert.ErrorIs(t, (&Budget{UserID: uuid.New(), Ceiling: decimal.NewFromInt(-1)}).Validate(), ErrNegativeCeiling)
}

func TestBudget_BeforeSave(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	budget := &Budget{UserID: uuid.New(), Ceiling: decimal.NewFromInt(500), CreatedAt: created}

	require.NoError(t, budget.BeforeSave(nil))
	assert.Equal(t, created, budget.CreatedAt)
	assert.True(t, budget.UpdatedAt.After(created))

	fresh := &Budget{UserID: uuid.New()}
	require.NoError(t, fresh.BeforeSave(nil))
	assert.False(t, fresh.CreatedAt.IsZero())
}

func TestBudgetStatus_Label(t *testing.T) {
	assert.Equal(t, "On track", BudgetStatusSafe.Label())
	assert.Equal(t, "Running low", BudgetStatusWarning.Label())
	assert.Equal(t, "Over budget", BudgetStatusOver.Label())
	assert.Equal(t, "paused", BudgetStatus("paused").Label())
}
