package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRecordOwnerRequired = errors.New("record owner is required")
	ErrNegativeAmount      = errors.New("record amount cannot be negative")
	ErrMissingRecordDate   = errors.New("record date is required")
)

// Record is a single expense entry owned by a user
type Record struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Text      string          `gorm:"type:varchar(255)" json:"text"`
	Category  string          `gorm:"type:varchar(50)" json:"category,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date      time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Record
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	return r.Validate()
}

// Validate checks the fields required to persist a record
func (r *Record) Validate() error {
	if r.UserID == uuid.Nil {
		return ErrRecordOwnerRequired
	}
	return r.ValidateForAggregation()
}

// ValidateForAggregation reports whether the record can be placed in a time bucket.
// Ownership is not checked here; callers scope records to one owner before aggregating.
func (r *Record) ValidateForAggregation() error {
	if r.Date.IsZero() {
		return ErrMissingRecordDate
	}
	if r.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// TableName returns the table name for Record
func (r *Record) TableName() string {
	return "records"
}
