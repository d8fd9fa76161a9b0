package engine

import (
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58"

	"github.com/sol-pie/passes/pkg/passes/data/config"
	"github.com/sol-pie/passes/pkg/passes/fee"
	passes_program "github.com/sol-pie/passes/pkg/solana/passes"
)

type InitializeArgs struct {
	Admin                  ed25519.PublicKey
	PaymentMint            ed25519.PublicKey
	ProtocolFeeTokenWallet ed25519.PublicKey

	ProtocolFeePct uint64
	OwnerFeePct    uint64
}

// Initialize creates the config singleton along with the escrow vault
// addresses for both rails. All further operations are gated on this
// having been called exactly once.
func (e *Engine) Initialize(ctx context.Context, args *InitializeArgs) (*config.Record, error) {
	log := e.log.WithField("method", "Initialize")

	if len(e.authority) > 0 && !e.authority.Equal(args.Admin) {
		return nil, ErrUnauthorized
	}

	if err := fee.ValidatePercentages(args.ProtocolFeePct, args.OwnerFeePct); err != nil {
		return nil, ErrInvalidFeeParameters
	}

	configAddress, configBump, err := passes_program.GetConfigAddress()
	if err != nil {
		log.WithError(err).Warn("failure deriving config address")
		return nil, err
	}

	escrowTokenWallet, _, err := passes_program.GetEscrowTokenWalletAddress(&passes_program.GetEscrowTokenWalletAddressArgs{
		PaymentMint: args.PaymentMint,
	})
	if err != nil {
		log.WithError(err).Warn("failure deriving escrow token wallet address")
		return nil, err
	}

	escrowSolWallet, _, err := passes_program.GetEscrowSolWalletAddress()
	if err != nil {
		log.WithError(err).Warn("failure deriving escrow sol wallet address")
		return nil, err
	}

	record := &config.Record{
		Address: base58.Encode(configAddress),
		Bump:    configBump,

		Admin:       base58.Encode(args.Admin),
		PaymentMint: base58.Encode(args.PaymentMint),

		EscrowTokenWallet: base58.Encode(escrowTokenWallet),
		EscrowSolWallet:   base58.Encode(escrowSolWallet),

		ProtocolFeePct:         args.ProtocolFeePct,
		OwnerFeePct:            args.OwnerFeePct,
		ProtocolFeeTokenWallet: base58.Encode(args.ProtocolFeeTokenWallet),
	}

	err = e.data.CreateConfig(ctx, record)
	if err == config.ErrAlreadyExists {
		return nil, ErrAlreadyInitialized
	} else if err != nil {
		log.WithError(err).Warn("failure creating config record")
		return nil, err
	}

	return record, nil
}
