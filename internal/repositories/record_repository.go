package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

// recordRepository implements RecordRepositoryInterface
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *gorm.DB) RecordRepositoryInterface {
	return &recordRepository{
		db: db,
	}
}

// Create creates a new record
func (r *recordRepository) Create(ctx context.Context, record *models.Record) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		err = translateConstraintError(err, models.ErrNegativeAmount, models.ErrMissingRecordDate)
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// GetByID retrieves a record by ID
func (r *recordRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Record, error) {
	var record models.Record
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &record, nil
}

// GetByUserID retrieves every record of a user, newest first
func (r *recordRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Record, error) {
	records := []models.Record{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}
	return records, nil
}

// GetByUserIDAndDateRange retrieves a user's records dated within [startDate, endDate]
func (r *recordRepository) GetByUserIDAndDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]models.Record, error) {
	records := []models.Record{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get records by date range: %w", err)
	}
	return records, nil
}

// Delete removes a record owned by userID
func (r *recordRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Record{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// DeleteByUserID removes every record of a user and returns how many were deleted
func (r *recordRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Record{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete records: %w", result.Error)
	}
	return result.RowsAffected, nil
}
