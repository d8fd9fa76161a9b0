// Package engine implements the passes issuance and trading flows on
// top of the data layer, mirroring the on-chain program's semantics.
package engine

import (
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"

	"github.com/sol-pie/passes/pkg/passes/curve"
	"github.com/sol-pie/passes/pkg/passes/data"
	"github.com/sol-pie/passes/pkg/passes/data/config"
	"github.com/sol-pie/passes/pkg/passes/data/ledger"
	passes_program "github.com/sol-pie/passes/pkg/solana/passes"
)

type Engine struct {
	log  *logrus.Entry
	data data.Provider

	authority ed25519.PublicKey

	tokenCurve curve.Curve
	solCurve   curve.Curve
}

type Option func(*Engine)

// WithTokenCurve overrides the payment token pricing curve
func WithTokenCurve(c curve.Curve) Option {
	return func(e *Engine) {
		e.tokenCurve = c
	}
}

// WithSolCurve overrides the native SOL pricing curve
func WithSolCurve(c curve.Curve) Option {
	return func(e *Engine) {
		e.solCurve = c
	}
}

// WithAuthority restricts Initialize to a known bootstrap authority
func WithAuthority(authority ed25519.PublicKey) Option {
	return func(e *Engine) {
		e.authority = authority
	}
}

func New(data data.Provider, opts ...Option) *Engine {
	e := &Engine{
		log:  logrus.StandardLogger().WithField("type", "passes/engine"),
		data: data,

		tokenCurve: curve.DefaultTokenCurve(),
		solCurve:   curve.DefaultSolCurve(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// railParams maps a settlement rail to its pricing curve and the escrow
// vault holding principal on that rail.
func (e *Engine) railParams(record *config.Record, rail ledger.Rail) (curve.Curve, string) {
	switch rail {
	case ledger.RailSol:
		return e.solCurve, record.EscrowSolWallet
	default:
		return e.tokenCurve, record.EscrowTokenWallet
	}
}

// railDecimals maps a settlement rail to the decimal precision of its
// quark amounts, for logging prices in UI units.
func railDecimals(rail ledger.Rail) int32 {
	if rail == ledger.RailSol {
		return passes_program.SolDecimals
	}
	return passes_program.UsdcDecimals
}

// getVerifiedConfig loads the config record and checks it against the
// derived config address.
func (e *Engine) getVerifiedConfig(ctx context.Context) (*config.Record, error) {
	record, err := e.data.GetConfig(ctx)
	if err == config.ErrNotFound {
		return nil, ErrNotInitialized
	} else if err != nil {
		return nil, err
	}

	derived, _, err := passes_program.GetConfigAddress()
	if err != nil {
		return nil, err
	}

	if record.Address != base58.Encode(derived) {
		return nil, ErrAccountMismatch
	}

	return record, nil
}

// Deposit credits external funds to an account on a rail. This is the
// entry point for payer balances.
func (e *Engine) Deposit(ctx context.Context, rail ledger.Rail, account ed25519.PublicKey, quarks uint64) error {
	if quarks == 0 {
		return ErrZeroAmount
	}

	err := e.data.CreditFunds(ctx, rail, base58.Encode(account), quarks)
	if err == ledger.ErrOverflow {
		return ErrOverflow
	}
	return err
}

// Withdraw debits funds from an account on a rail back out of the
// system.
func (e *Engine) Withdraw(ctx context.Context, rail ledger.Rail, account ed25519.PublicKey, quarks uint64) error {
	if quarks == 0 {
		return ErrZeroAmount
	}

	err := e.data.DebitFunds(ctx, rail, base58.Encode(account), quarks)
	if err == ledger.ErrNotFound || err == ledger.ErrInsufficientFunds {
		return ErrInsufficientFunds
	}
	return err
}

// GetFunds returns an account's balance on a rail. Accounts that never
// received funds have a zero balance.
func (e *Engine) GetFunds(ctx context.Context, rail ledger.Rail, account ed25519.PublicKey) (uint64, error) {
	record, err := e.data.GetFunds(ctx, rail, base58.Encode(account))
	if err == ledger.ErrNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return record.Balance, nil
}
