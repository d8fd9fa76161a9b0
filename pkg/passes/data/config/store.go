package config

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrNotFound      = errors.New("config not found")
	ErrAlreadyExists = errors.New("config already exists")
	ErrStaleRecord   = errors.New("config record is stale")
)

type Store interface {
	// Put creates the config record. Fails with ErrAlreadyExists if one
	// was already created.
	Put(ctx context.Context, record *Record) error

	// Get returns the config record
	Get(ctx context.Context) (*Record, error)

	// Update updates the fee parameters and protocol fee destination of
	// an existing config record
	Update(ctx context.Context, record *Record) error
}
