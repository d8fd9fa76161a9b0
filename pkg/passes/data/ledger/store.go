package ledger

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrNotFound          = errors.New("ledger record not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOverflow          = errors.New("balance overflow")
)

type Store interface {
	// Get finds the ledger record for an account on a rail
	Get(ctx context.Context, rail Rail, account string) (*Record, error)

	// Credit adds quarks to an account's balance on a rail, creating
	// the record if it doesn't exist
	Credit(ctx context.Context, rail Rail, account string, quarks uint64) error

	// Debit removes quarks from an account's balance on a rail. Fails
	// with ErrInsufficientFunds if the balance would go negative, and
	// ErrNotFound if the record doesn't exist.
	Debit(ctx context.Context, rail Rail, account string, quarks uint64) error
}
