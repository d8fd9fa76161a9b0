package engine

import "github.com/pkg/errors"

var (
	// ErrAlreadyInitialized is returned when attempting to initialize a
	// deployment that already has a config
	ErrAlreadyInitialized = errors.New("already initialized")

	// ErrNotInitialized is returned when an operation requires a config
	// that hasn't been created yet
	ErrNotInitialized = errors.New("not initialized")

	// ErrInvalidFeeParameters is returned when fee percentages are out
	// of range, individually or combined
	ErrInvalidFeeParameters = errors.New("invalid fee parameters")

	// ErrUnauthorized is returned when the caller isn't the admin for
	// an admin-gated operation
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAccountMismatch is returned when a stored record doesn't match
	// its derived address
	ErrAccountMismatch = errors.New("account mismatch")

	// ErrInsufficientFunds is returned when the payer can't cover the
	// gross price
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientPasses is returned when a holder sells more passes
	// than they hold
	ErrInsufficientPasses = errors.New("insufficient passes")

	// ErrOverflow is returned when a price or balance computation
	// overflows
	ErrOverflow = errors.New("overflow")

	// ErrZeroAmount is returned when an operation is called with a zero
	// pass amount
	ErrZeroAmount = errors.New("zero amount")

	// ErrZeroPrice is returned when a sale would pay out nothing
	ErrZeroPrice = errors.New("zero price")

	// ErrZeroSupply is returned when buying passes for an owner that
	// hasn't issued any
	ErrZeroSupply = errors.New("zero supply")

	// ErrLastPass is returned when a sale would bring the supply to zero
	ErrLastPass = errors.New("cannot sell the last pass")
)
