// Package curve implements the bonding curve that prices passes as a
// function of an owner's current supply.
package curve

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

var (
	ErrOverflow = errors.New("overflow in price computation")
)

// Curve computes the gross cost of moving an owner's supply from
// supply to supply+amount. Implementations must be deterministic and
// monotonically non-decreasing in supply for a fixed amount.
type Curve interface {
	Price(supply, amount uint64) (uint64, error)
}

// SummationCurve prices the k-th pass at k²*unit/divisor, so a purchase
// of amount passes at a given supply costs the sum of squares over the
// covered range. This is the curve the deployed program uses.
type SummationCurve struct {
	unit    uint64
	divisor uint64
}

func NewSummationCurve(unit, divisor uint64) *SummationCurve {
	return &SummationCurve{
		unit:    unit,
		divisor: divisor,
	}
}

// DefaultTokenCurve is the payment-token rail curve (6 decimal quarks).
func DefaultTokenCurve() *SummationCurve {
	return NewSummationCurve(1_000_000, 160)
}

// DefaultSolCurve is the native rail curve (lamports).
func DefaultSolCurve() *SummationCurve {
	return NewSummationCurve(1_000_000_000, 1600)
}

// Price implements Curve.Price.
//
// The genesis pass (supply 0, amount 1) is free by construction.
func (c *SummationCurve) Price(supply, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, nil
	}
	if amount > math.MaxUint64-supply {
		return 0, ErrOverflow
	}
	if supply == 0 && amount == 1 {
		return 0, nil
	}

	lower := new(big.Int)
	if supply > 0 {
		lower = squareSum(supply - 1)
	}
	upper := squareSum(supply + amount - 1)

	summation := new(big.Int).Sub(upper, lower)

	price := summation.Mul(summation, new(big.Int).SetUint64(c.unit))
	price.Quo(price, new(big.Int).SetUint64(c.divisor))

	if !price.IsUint64() {
		return 0, ErrOverflow
	}
	return price.Uint64(), nil
}

// squareSum returns 1² + 2² + ... + n² = n(n+1)(2n+1)/6.
func squareSum(n uint64) *big.Int {
	bigN := new(big.Int).SetUint64(n)

	res := new(big.Int).Add(bigN, big.NewInt(1))
	res.Mul(res, bigN)
	res.Mul(res, new(big.Int).Add(new(big.Int).Lsh(bigN, 1), big.NewInt(1)))
	return res.Quo(res, big.NewInt(6))
}
