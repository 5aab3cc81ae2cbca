// Package store persists candidate records and fetches them back for
// matching.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Rick03098/recruitment-matcher/internal/types"
)

// Store is the persistence contract the pipeline depends on. A save failure
// is fatal to the save only: the extracted record is still returned to the
// caller.
type Store interface {
	// Save persists one candidate record and returns its ID
	Save(ctx context.Context, record types.CandidateRecord) (uuid.UUID, error)
	// FetchAll returns the full candidate pool, oldest first
	FetchAll(ctx context.Context) ([]types.CandidateRecord, error)
	// Close releases the underlying connections
	Close()
}

// StoreError represents a persistence failure.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
