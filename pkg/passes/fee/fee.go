// Package fee implements the protocol/owner/escrow split applied to
// every paid issuance, purchase and redemption.
package fee

import (
	"math/bits"

	"github.com/pkg/errors"
)

// PercentScale is the fixed-point scale for fee percentages. A value of
// 20_000_000 encodes 2%.
const PercentScale = 1_000_000_000

var (
	ErrInvalidFeeParameters = errors.New("invalid fee parameters")
)

// Breakdown partitions a gross payment. The parts always sum exactly to
// the gross: flooring remainders are assigned to the principal.
type Breakdown struct {
	ProtocolFee uint64
	OwnerFee    uint64
	Principal   uint64
}

// ValidatePercentages enforces the combined-fee invariant. Fees must
// leave a positive principal share.
func ValidatePercentages(protocolFeePct, ownerFeePct uint64) error {
	if protocolFeePct >= PercentScale || ownerFeePct >= PercentScale {
		return ErrInvalidFeeParameters
	}
	if protocolFeePct+ownerFeePct >= PercentScale {
		return ErrInvalidFeeParameters
	}
	return nil
}

// Split partitions gross into protocol fee, owner fee and principal
// using floor division at PercentScale.
func Split(gross, protocolFeePct, ownerFeePct uint64) (*Breakdown, error) {
	if err := ValidatePercentages(protocolFeePct, ownerFeePct); err != nil {
		return nil, err
	}

	protocolFee := mulPct(gross, protocolFeePct)
	ownerFee := mulPct(gross, ownerFeePct)

	return &Breakdown{
		ProtocolFee: protocolFee,
		OwnerFee:    ownerFee,
		Principal:   gross - protocolFee - ownerFee,
	}, nil
}

// mulPct computes amount*pct/PercentScale through a 128-bit
// intermediate. The quotient always fits in 64 bits since
// pct < PercentScale.
func mulPct(amount, pct uint64) uint64 {
	hi, lo := bits.Mul64(amount, pct)
	quo, _ := bits.Div64(hi, lo, PercentScale)
	return quo
}
