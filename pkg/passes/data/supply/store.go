package supply

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("supply not found")
)

type Store interface {
	// Get finds the supply record for a given owner
	Get(ctx context.Context, owner string) (*Record, error)

	// Save creates or updates the supply record for record.Owner
	Save(ctx context.Context, record *Record) error
}
