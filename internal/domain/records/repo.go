package records

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means no record exists for the requested patient id.
	ErrNotFound = errors.New("patient not found")
	// ErrDuplicateID means a create collided with an existing patient id.
	ErrDuplicateID = errors.New("patient id already exists")
)

// Repository is the storage contract for patient records.
type Repository interface {
	Create(ctx context.Context, r *Record) error
	GetByID(ctx context.Context, id string) (*Record, error)
	// Update overwrites every non-key column of the row identified by id.
	// Updating a missing id is a no-op, not an error.
	Update(ctx context.Context, id string, r *Record) error
	Delete(ctx context.Context, id string) error
	ListSummaries(ctx context.Context) ([]Summary, error)
	SearchByName(ctx context.Context, q string) ([]Summary, error)
}
