package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var errNoMigrations = errors.New("migrations directory not found")

// MigrationSettings is read from AUTO_MIGRATE, MIGRATIONS_PATH, SEEDS_PATH and SEED_DATABASE
type MigrationSettings struct {
	Enabled        bool
	MigrationsPath string
	SeedsPath      string
	Seed           bool
	ReadyAttempts  int
	ReadyInterval  time.Duration
}

func MigrationSettingsFromEnv() MigrationSettings {
	return MigrationSettings{
		Enabled:        os.Getenv("AUTO_MIGRATE") == "true",
		MigrationsPath: envOr("MIGRATIONS_PATH", "db/migrations"),
		SeedsPath:      envOr("SEEDS_PATH", "db/seeds"),
		Seed:           os.Getenv("SEED_DATABASE") == "true",
		ReadyAttempts:  30,
		ReadyInterval:  2 * time.Second,
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Migrator owns the SQL schema of the records and budgets tables
type Migrator struct {
	db       *sql.DB
	settings MigrationSettings
}

func NewMigrator(db *sql.DB, settings MigrationSettings) *Migrator {
	return &Migrator{db: db, settings: settings}
}

// WaitReady pings until the database answers, the attempts run out or ctx ends
func (m *Migrator) WaitReady(ctx context.Context) error {
	attempts := max(m.settings.ReadyAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if lastErr = m.db.PingContext(ctx); lastErr == nil {
			return nil
		}
		log.Printf("Database not reachable yet (%d/%d): %v", attempt, attempts, lastErr)
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.settings.ReadyInterval):
		}
	}
	return fmt.Errorf("database unreachable after %d attempts: %w", attempts, lastErr)
}

func (m *Migrator) migrationsDir() (string, error) {
	dir, err := filepath.Abs(m.settings.MigrationsPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve migrations path: %w", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", errNoMigrations
	}
	return dir, nil
}

func (m *Migrator) source() (*migrate.Migrate, error) {
	dir, err := m.migrationsDir()
	if err != nil {
		return nil, err
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate driver: %w", err)
	}
	mig, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to open migrations: %w", err)
	}
	return mig, nil
}

// Up applies pending migrations and returns the resulting schema version.
// A dirty schema is forced back to its recorded version first.
func (m *Migrator) Up() (uint, error) {
	mig, err := m.source()
	if err != nil {
		return 0, err
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		log.Printf("Schema version %d is dirty, forcing it before upgrading", version)
		if err := mig.Force(int(version)); err != nil {
			return 0, fmt.Errorf("failed to force schema version %d: %w", version, err)
		}
	}

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return version, fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, _, err = mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Status reports the applied schema version
func (m *Migrator) Status() (version uint, dirty bool, err error) {
	mig, err := m.source()
	if err != nil {
		return 0, false, err
	}
	return mig.Version()
}

// Seed runs every *.sql file under SeedsPath in name order, one transaction per
// file. Files that fail are rolled back and skipped; the count of applied files is returned.
func (m *Migrator) Seed(ctx context.Context) (int, error) {
	if !m.settings.Seed {
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(m.settings.SeedsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to list seed files: %w", err)
	}
	sort.Strings(files)

	applied := 0
	for _, file := range files {
		body, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("failed to read seed file %s: %w", file, err)
		}
		if err := m.execSeed(ctx, string(body)); err != nil {
			log.Printf("Skipping seed file %s: %v", filepath.Base(file), err)
			continue
		}
		applied++
	}
	return applied, nil
}

func (m *Migrator) execSeed(ctx context.Context, body string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, body); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Migrate runs the SQL migrations and seeds when enabled. It reports whether the
// schema is now managed by migrations; callers fall back to gorm AutoMigrate otherwise.
func Migrate(ctx context.Context, db *sql.DB, settings MigrationSettings) (bool, error) {
	if !settings.Enabled {
		log.Println("AUTO_MIGRATE is off, skipping SQL migrations")
		return false, nil
	}

	m := NewMigrator(db, settings)
	if _, err := m.migrationsDir(); errors.Is(err, errNoMigrations) {
		log.Printf("No migrations directory at %s", settings.MigrationsPath)
		return false, nil
	}

	if err := m.WaitReady(ctx); err != nil {
		return false, fmt.Errorf("database readiness check failed: %w", err)
	}

	version, err := m.Up()
	if err != nil {
		return false, err
	}
	log.Printf("Schema at version %d", version)

	applied, err := m.Seed(ctx)
	if err != nil {
		log.Printf("Warning: seeding stopped early: %v", err)
	}
	if settings.Seed {
		log.Printf("Seeded %d file(s) from %s", applied, settings.SeedsPath)
	}
	return true, nil
}
