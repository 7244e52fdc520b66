package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrRecordRetrieval marks every failure to obtain a user's records
	ErrRecordRetrieval = errors.New("record retrieval failed")

	// ErrOwnerUnauthenticated is a retrieval failure caused by a missing owner
	ErrOwnerUnauthenticated = errors.New("owner is not authenticated")

	ErrBudgetSave = errors.New("failed to save budget")
)

// RetrievalError reports that records for a user could not be fetched. Totals are
// unavailable in that case and callers must not substitute zero.
type RetrievalError struct {
	UserID uuid.UUID
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s for user %s: %v", ErrRecordRetrieval, e.UserID, e.Err)
}

func (e *RetrievalError) Unwrap() []error {
	return []error{ErrRecordRetrieval, e.Err}
}

// IsRetrievalFailure reports whether err is a record retrieval failure of any cause
func IsRetrievalFailure(err error) bool {
	return errors.Is(err, ErrRecordRetrieval)
}
