package balance

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("balance not found")
)

type Store interface {
	// Get finds the balance record for a given (owner, holder) pair
	Get(ctx context.Context, owner, holder string) (*Record, error)

	// GetAllByOwner finds all balance records for an owner's passes.
	// Returns ErrNotFound if no holders exist.
	GetAllByOwner(ctx context.Context, owner string) ([]*Record, error)

	// Save creates or updates the balance record for the
	// (record.Owner, record.Holder) pair
	Save(ctx context.Context, record *Record) error
}
