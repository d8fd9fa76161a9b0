package config

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sol-pie/passes/pkg/passes/fee"
)

// Record mirrors the on-chain config account. There is exactly one per
// deployment.
type Record struct {
	Id uint64

	Address string
	Bump    uint8

	Admin       string
	PaymentMint string

	EscrowTokenWallet string
	EscrowSolWallet   string

	ProtocolFeePct         uint64
	OwnerFeePct            uint64
	ProtocolFeeTokenWallet string

	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("config address is required")
	}

	if len(r.Admin) == 0 {
		return errors.New("admin address is required")
	}

	if len(r.PaymentMint) == 0 {
		return errors.New("payment mint address is required")
	}

	if len(r.EscrowTokenWallet) == 0 {
		return errors.New("escrow token wallet address is required")
	}

	if len(r.EscrowSolWallet) == 0 {
		return errors.New("escrow sol wallet address is required")
	}

	if len(r.ProtocolFeeTokenWallet) == 0 {
		return errors.New("protocol fee token wallet address is required")
	}

	if err := fee.ValidatePercentages(r.ProtocolFeePct, r.OwnerFeePct); err != nil {
		return err
	}

	return nil
}

func (r *Record) Clone() Record {
	return Record{
		Id:                     r.Id,
		Address:                r.Address,
		Bump:                   r.Bump,
		Admin:                  r.Admin,
		PaymentMint:            r.PaymentMint,
		EscrowTokenWallet:      r.EscrowTokenWallet,
		EscrowSolWallet:        r.EscrowSolWallet,
		ProtocolFeePct:         r.ProtocolFeePct,
		OwnerFeePct:            r.OwnerFeePct,
		ProtocolFeeTokenWallet: r.ProtocolFeeTokenWallet,
		CreatedAt:              r.CreatedAt,
		LastUpdatedAt:          r.LastUpdatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id
	dst.Address = r.Address
	dst.Bump = r.Bump
	dst.Admin = r.Admin
	dst.PaymentMint = r.PaymentMint
	dst.EscrowTokenWallet = r.EscrowTokenWallet
	dst.EscrowSolWallet = r.EscrowSolWallet
	dst.ProtocolFeePct = r.ProtocolFeePct
	dst.OwnerFeePct = r.OwnerFeePct
	dst.ProtocolFeeTokenWallet = r.ProtocolFeeTokenWallet
	dst.CreatedAt = r.CreatedAt
	dst.LastUpdatedAt = r.LastUpdatedAt
}
