package curve

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Quote converts a raw quark amount to a UI amount at the given decimal
// precision (eg. 6 for the payment token, 9 for SOL).
func Quote(quarks uint64, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(quarks), -decimals)
}
