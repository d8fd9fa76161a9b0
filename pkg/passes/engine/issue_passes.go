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

// IssuePasses mints amount passes for the owner, held by the owner
// themselves. The owner pays the bonding curve price on the payment
// token rail, with the genesis pass being free.
func (e *Engine) IssuePasses(ctx context.Context, owner ed25519.PublicKey, amount uint64) error {
	log := e.log.WithFields(map[string]interface{}{
		"method": "IssuePasses",
		"owner":  base58.Encode(owner),
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

		balanceRecord, err := e.getVerifiedBalance(ctx, owner, owner)
		if err != nil {
			return err
		}

		gross, err := e.tokenCurve.Price(supplyRecord.Amount, amount)
		if err == curve.ErrOverflow {
			return ErrOverflow
		} else if err != nil {
			return err
		}

		breakdown, err := fee.Split(gross, configRecord.ProtocolFeePct, configRecord.OwnerFeePct)
		if err != nil {
			return ErrInvalidFeeParameters
		}

		log = log.WithField("price", curve.Quote(gross, railDecimals(ledger.RailToken)))

		if gross > 0 {
			credits := make(map[string]uint64)
			credits[configRecord.ProtocolFeeTokenWallet] += breakdown.ProtocolFee
			credits[supplyRecord.Owner] += breakdown.OwnerFee
			credits[configRecord.EscrowTokenWallet] += breakdown.Principal
			if err := e.checkCreditHeadroom(ctx, ledger.RailToken, supplyRecord.Owner, credits); err != nil {
				return err
			}

			err = e.data.DebitFunds(ctx, ledger.RailToken, supplyRecord.Owner, gross)
			if err == ledger.ErrNotFound || err == ledger.ErrInsufficientFunds {
				return ErrInsufficientFunds
			} else if err != nil {
				return err
			}

			if err := e.settle(ctx, ledger.RailToken, configRecord.ProtocolFeeTokenWallet, supplyRecord.Owner, configRecord.EscrowTokenWallet, breakdown); err != nil {
				return err
			}
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

		log.Debug("passes issued")

		return nil
	})
}

// checkCreditHeadroom verifies every credit recipient can absorb its
// share without tripping the ledger balance cap. Runs before the first
// write so a doomed instruction leaves no partial state behind. The
// payer is exempt since their debit always covers their credit.
func (e *Engine) checkCreditHeadroom(ctx context.Context, rail ledger.Rail, payer string, credits map[string]uint64) error {
	for account, quarks := range credits {
		if account == payer || quarks == 0 {
			continue
		}

		record, err := e.data.GetFunds(ctx, rail, account)
		if err == ledger.ErrNotFound {
			if quarks > ledger.MaxBalance {
				return ErrOverflow
			}
			continue
		} else if err != nil {
			return err
		}

		if quarks > ledger.MaxBalance-record.Balance {
			return ErrOverflow
		}
	}
	return nil
}

// settle distributes a split gross payment to the protocol fee
// destination, the owner and the escrow vault. The caller has already
// debited the gross from the payer.
func (e *Engine) settle(ctx context.Context, rail ledger.Rail, protocolFeeDst, owner, escrow string, breakdown *fee.Breakdown) error {
	if breakdown.ProtocolFee > 0 {
		if err := e.data.CreditFunds(ctx, rail, protocolFeeDst, breakdown.ProtocolFee); err != nil {
			return err
		}
	}

	if breakdown.OwnerFee > 0 {
		if err := e.data.CreditFunds(ctx, rail, owner, breakdown.OwnerFee); err != nil {
			return err
		}
	}

	if breakdown.Principal > 0 {
		if err := e.data.CreditFunds(ctx, rail, escrow, breakdown.Principal); err != nil {
			return err
		}
	}

	return nil
}
