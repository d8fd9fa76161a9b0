package engine

import (
	"context"
	"crypto/ed25519"
	"database/sql"

	"github.com/mr-tron/base58"

	"github.com/sol-pie/passes/pkg/passes/curve"
	"github.com/sol-pie/passes/pkg/passes/data/ledger"
	"github.com/sol-pie/passes/pkg/passes/fee"
)

// SellPasses sells amount of the owner's passes held by the holder back
// to the escrow for payment tokens.
func (e *Engine) SellPasses(ctx context.Context, owner, holder ed25519.PublicKey, amount uint64) error {
	return e.sellPasses(ctx, ledger.RailToken, owner, holder, amount)
}

// SellPassesSol sells amount of the owner's passes held by the holder
// back to the escrow for native SOL.
func (e *Engine) SellPassesSol(ctx context.Context, owner, holder ed25519.PublicKey, amount uint64) error {
	return e.sellPasses(ctx, ledger.RailSol, owner, holder, amount)
}

func (e *Engine) sellPasses(ctx context.Context, rail ledger.Rail, owner, holder ed25519.PublicKey, amount uint64) error {
	log := e.log.WithFields(map[string]interface{}{
		"method": "sellPasses",
		"rail":   string(rail),
		"owner":  base58.Encode(owner),
		"holder": base58.Encode(holder),
		"amount": amount,
	})

	if amount == 0 {
		return ErrZeroAmount
	}

	return e.data.ExecuteInTx(ctx, sql.LevelSerializable, func(ctx context.Context) error {
		configRecord, err := e.getVerifiedConfig(ctx)
		if err != nil {
			return err
		}

		supplyRecord, err := e.getVerifiedSupply(ctx, owner)
		if err != nil {
			return err
		}

		if supplyRecord.Amount == 0 {
			return ErrZeroSupply
		}

		balanceRecord, err := e.getVerifiedBalance(ctx, owner, holder)
		if err != nil {
			return err
		}

		if balanceRecord.Amount < amount {
			return ErrInsufficientPasses
		}

		// The genesis pass can never be sold back
		if amount >= supplyRecord.Amount {
			return ErrLastPass
		}

		pricingCurve, escrow := e.railParams(configRecord, rail)

		gross, err := pricingCurve.Price(supplyRecord.Amount-amount, amount)
		if err == curve.ErrOverflow {
			return ErrOverflow
		} else if err != nil {
			return err
		}

		if gross == 0 {
			return ErrZeroPrice
		}

		log = log.WithField("price", curve.Quote(gross, railDecimals(rail)))

		// Fees were taken when the passes were bought, so the seller is
		// paid out the principal that actually reached the escrow
		breakdown, err := fee.Split(gross, configRecord.ProtocolFeePct, configRecord.OwnerFeePct)
		if err != nil {
			return ErrInvalidFeeParameters
		}

		credits := map[string]uint64{balanceRecord.Holder: breakdown.Principal}
		if err := e.checkCreditHeadroom(ctx, rail, escrow, credits); err != nil {
			return err
		}

		err = e.data.DebitFunds(ctx, rail, escrow, breakdown.Principal)
		if err == ledger.ErrNotFound || err == ledger.ErrInsufficientFunds {
			return ErrInsufficientFunds
		} else if err != nil {
			return err
		}

		if err := e.data.CreditFunds(ctx, rail, balanceRecord.Holder, breakdown.Principal); err != nil {
			return err
		}

		supplyRecord.Amount -= amount
		if err := e.data.SaveSupply(ctx, supplyRecord); err != nil {
			log.WithError(err).Warn("failure saving supply record")
			return err
		}

		balanceRecord.Amount -= amount
		if err := e.data.SaveBalance(ctx, balanceRecord); err != nil {
			log.WithError(err).Warn("failure saving balance record")
			return err
		}

		log.Debug("passes redeemed")

		return nil
	})
}
