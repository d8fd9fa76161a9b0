package engine

import (
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58"

	"github.com/sol-pie/passes/pkg/passes/data/balance"
	"github.com/sol-pie/passes/pkg/passes/data/supply"
	passes_program "github.com/sol-pie/passes/pkg/solana/passes"
)

// getVerifiedSupply loads an owner's supply record and checks it
// against the derived address. Returns a fresh zero-amount record when
// none exists yet.
func (e *Engine) getVerifiedSupply(ctx context.Context, owner ed25519.PublicKey) (*supply.Record, error) {
	derived, bump, err := passes_program.GetPassesSupplyAddress(&passes_program.GetPassesSupplyAddressArgs{
		Owner: owner,
	})
	if err != nil {
		return nil, err
	}

	record, err := e.data.GetSupply(ctx, base58.Encode(owner))
	if err == supply.ErrNotFound {
		return &supply.Record{
			Address: base58.Encode(derived),
			Bump:    bump,
			Owner:   base58.Encode(owner),
			Amount:  0,
		}, nil
	} else if err != nil {
		return nil, err
	}

	if record.Address != base58.Encode(derived) {
		return nil, ErrAccountMismatch
	}

	return record, nil
}

// getVerifiedBalance loads a (owner, holder) balance record and checks
// it against the derived address. Returns a fresh zero-amount record
// when none exists yet.
func (e *Engine) getVerifiedBalance(ctx context.Context, owner, holder ed25519.PublicKey) (*balance.Record, error) {
	derived, bump, err := passes_program.GetPassesBalanceAddress(&passes_program.GetPassesBalanceAddressArgs{
		Owner:  owner,
		Holder: holder,
	})
	if err != nil {
		return nil, err
	}

	record, err := e.data.GetBalance(ctx, base58.Encode(owner), base58.Encode(holder))
	if err == balance.ErrNotFound {
		return &balance.Record{
			Address: base58.Encode(derived),
			Bump:    bump,
			Owner:   base58.Encode(owner),
			Holder:  base58.Encode(holder),
			Amount:  0,
		}, nil
	} else if err != nil {
		return nil, err
	}

	if record.Address != base58.Encode(derived) {
		return nil, ErrAccountMismatch
	}

	return record, nil
}
