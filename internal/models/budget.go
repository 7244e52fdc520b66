package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBudgetOwnerRequired = errors.New("budget owner is required")
	ErrNegativeCeiling     = errors.New("budget ceiling cannot be negative")
)

// Budget is the persisted spending limit of one user
type Budget struct {
	UserID    uuid.UUID       `gorm:"type:uuid;primary_key" json:"user_id"`
	Ceiling   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"ceiling"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeSave hook for Budget
func (b *Budget) BeforeSave(tx *gorm.DB) error {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return ErrBudgetOwnerRequired
	}
	if b.Ceiling.IsNegative() {
		return ErrNegativeCeiling
	}
	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
