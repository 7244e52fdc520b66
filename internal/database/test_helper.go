package database

import (
	"fmt"
	"testing"
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite database
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to ":memory:" gets its own database
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestRecord inserts a record for userID dated at date
func CreateTestRecord(t *testing.T, db *DB, userID uuid.UUID, amount string, date time.Time) *models.Record {
	t.Helper()

	record := &models.Record{
		UserID:   userID,
		Text:     "Test expense",
		Category: "General",
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}

	return record
}

// CleanupTestDB empties every table created by AutoMigrate
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"records",
		"budgets",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
