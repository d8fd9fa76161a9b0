package engine

import (
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58"

	"github.com/sol-pie/passes/pkg/passes/curve"
	"github.com/sol-pie/passes/pkg/passes/data/balance"
	"github.com/sol-pie/passes/pkg/passes/data/ledger"
)

// GetPrice quotes the gross payment token cost of buying amount passes
// at the owner's current supply.
func (e *Engine) GetPrice(ctx context.Context, owner ed25519.PublicKey, amount uint64) (uint64, error) {
	return e.getPrice(ctx, ledger.RailToken, owner, amount)
}

// GetPriceSol quotes the gross lamport cost of buying amount passes at
// the owner's current supply.
func (e *Engine) GetPriceSol(ctx context.Context, owner ed25519.PublicKey, amount uint64) (uint64, error) {
	return e.getPrice(ctx, ledger.RailSol, owner, amount)
}

func (e *Engine) getPrice(ctx context.Context, rail ledger.Rail, owner ed25519.PublicKey, amount uint64) (uint64, error) {
	pricingCurve := e.tokenCurve
	if rail == ledger.RailSol {
		pricingCurve = e.solCurve
	}

	supplyRecord, err := e.getVerifiedSupply(ctx, owner)
	if err != nil {
		return 0, err
	}

	price, err := pricingCurve.Price(supplyRecord.Amount, amount)
	if err == curve.ErrOverflow {
		return 0, ErrOverflow
	} else if err != nil {
		return 0, err
	}
	return price, nil
}

// GetPassesSupply returns the owner's issued pass count
func (e *Engine) GetPassesSupply(ctx context.Context, owner ed25519.PublicKey) (uint64, error) {
	record, err := e.getVerifiedSupply(ctx, owner)
	if err != nil {
		return 0, err
	}
	return record.Amount, nil
}

// GetPassesBalance returns the number of an owner's passes held by a
// holder
func (e *Engine) GetPassesBalance(ctx context.Context, owner, holder ed25519.PublicKey) (uint64, error) {
	record, err := e.getVerifiedBalance(ctx, owner, holder)
	if err != nil {
		return 0, err
	}
	return record.Amount, nil
}

// GetHolders returns all balance records for an owner's passes
func (e *Engine) GetHolders(ctx context.Context, owner ed25519.PublicKey) ([]*balance.Record, error) {
	records, err := e.data.GetBalancesByOwner(ctx, base58.Encode(owner))
	if err == balance.ErrNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return records, nil
}
