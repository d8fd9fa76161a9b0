package engine

import (
	"context"
	"crypto/ed25519"
	"database/sql"

	"github.com/mr-tron/base58"

	"github.com/sol-pie/passes/pkg/passes/fee"
)

// SetProtocolFeePct updates the protocol fee percentage. Only the admin
// may call this.
func (e *Engine) SetProtocolFeePct(ctx context.Context, authority ed25519.PublicKey, pct uint64) error {
	return e.data.ExecuteInTx(ctx, sql.LevelSerializable, func(ctx context.Context) error {
		record, err := e.getVerifiedConfig(ctx)
		if err != nil {
			return err
		}

		if record.Admin != base58.Encode(authority) {
			return ErrUnauthorized
		}

		if err := fee.ValidatePercentages(pct, record.OwnerFeePct); err != nil {
			return ErrInvalidFeeParameters
		}

		record.ProtocolFeePct = pct
		return e.data.UpdateConfig(ctx, record)
	})
}

// SetOwnerFeePct updates the owner fee percentage. Only the admin may
// call this.
func (e *Engine) SetOwnerFeePct(ctx context.Context, authority ed25519.PublicKey, pct uint64) error {
	return e.data.ExecuteInTx(ctx, sql.LevelSerializable, func(ctx context.Context) error {
		record, err := e.getVerifiedConfig(ctx)
		if err != nil {
			return err
		}

		if record.Admin != base58.Encode(authority) {
			return ErrUnauthorized
		}

		if err := fee.ValidatePercentages(record.ProtocolFeePct, pct); err != nil {
			return ErrInvalidFeeParameters
		}

		record.OwnerFeePct = pct
		return e.data.UpdateConfig(ctx, record)
	})
}

// SetProtocolFeeDst updates the wallet receiving protocol fees. Only
// the admin may call this.
func (e *Engine) SetProtocolFeeDst(ctx context.Context, authority, wallet ed25519.PublicKey) error {
	return e.data.ExecuteInTx(ctx, sql.LevelSerializable, func(ctx context.Context) error {
		record, err := e.getVerifiedConfig(ctx)
		if err != nil {
			return err
		}

		if record.Admin != base58.Encode(authority) {
			return ErrUnauthorized
		}

		record.ProtocolFeeTokenWallet = base58.Encode(wallet)
		return e.data.UpdateConfig(ctx, record)
	})
}
