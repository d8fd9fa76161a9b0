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

// BuyPasses buys amount of the owner's passes for the holder, paying
// with the payment token.
func (e *Engine) BuyPasses(ctx context.Context, owner, holder ed25519.PublicKey, amount uint64) error {
	return e.buyPasses(ctx, ledger.RailToken, owner, holder, amount)
}

// BuyPassesSol buys amount of the owner's passes for the holder, paying
// with native SOL.
func (e *Engine) BuyPassesSol(ctx context.Context, owner, holder ed25519.PublicKey, amount uint64) error {
	return e.buyPasses(ctx, ledger.RailSol, owner, holder, amount)
}

func (e *Engine) buyPasses(ctx context.Context, rail ledger.Rail, owner, holder ed25519.PublicKey, amount uint64) error {
	log := e.log.WithFields(map[string]interface{}{
		"method": "buyPasses",
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

		// The owner bootstraps their supply through issuance
		if supplyRecord.Amount == 0 {
			return ErrZeroSupply
		}

		balanceRecord, err := e.getVerifiedBalance(ctx, owner, holder)
		if err != nil {
			return err
		}

		pricingCurve, escrow := e.railParams(configRecord, rail)

		gross, err := pricingCurve.Price(supplyRecord.Amount, amount)
		if err == curve.ErrOverflow {
			return ErrOverflow
		} else if err != nil {
			return err
		}

		if gross == 0 {
			return ErrZeroPrice
		}

		log = log.WithField("price", curve.Quote(gross, railDecimals(rail)))

		breakdown, err := fee.Split(gross, configRecord.ProtocolFeePct, configRecord.OwnerFeePct)
		if err != nil {
			return ErrInvalidFeeParameters
		}

		credits := make(map[string]uint64)
		credits[configRecord.ProtocolFeeTokenWallet] += breakdown.ProtocolFee
		credits[supplyRecord.Owner] += breakdown.OwnerFee
		credits[escrow] += breakdown.Principal
		if err := e.checkCreditHeadroom(ctx, rail, balanceRecord.Holder, credits); err != nil {
			return err
		}

		// The debit is the first write, so a holder without the funds
		// aborts the operation before any state changes
		err = e.data.DebitFunds(ctx, rail, balanceRecord.Holder, gross)
		if err == ledger.ErrNotFound || err == ledger.ErrInsufficientFunds {
			return ErrInsufficientFunds
		} else if err != nil {
			return err
		}

		if err := e.settle(ctx, rail, configRecord.ProtocolFeeTokenWallet, supplyRecord.Owner, escrow, breakdown); err != nil {
			return err
		}

		supplyRecord.Amount += amount
		if err := e.data.SaveSupply(ctx, supplyRecord); err != nil {
			log.WithError(err).Warn("failure saving supply record")
			return err
		}

		balanceRecord.Amount += amount
		if err := e.data.SaveBalance(ctx, balanceRecord); err != nil {
			log.WithError(err).Warn("failure saving balance record")
			return err
		}

		log.Debug("passes purchased")

		return nil
	})
}
