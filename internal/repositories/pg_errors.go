package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes raised by the constraints in db/migrations
const (
	pgNotNullViolation = "23502"
	pgCheckViolation   = "23514"
)

// translateConstraintError maps a constraint violation reported by Postgres onto the
// model sentinel the same rule produces in Go, so callers see one error either way.
// Other errors are returned unchanged.
func translateConstraintError(err error, onCheck, onNotNull error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgCheckViolation:
		if onCheck != nil {
			return fmt.Errorf("%w (constraint %s): %w", onCheck, pgErr.ConstraintName, err)
		}
	case pgNotNullViolation:
		if onNotNull != nil {
			return fmt.Errorf("%w (column %s): %w", onNotNull, pgErr.ColumnName, err)
		}
	}
	return err
}
