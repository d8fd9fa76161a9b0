package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummationCurve_KnownPrices(t *testing.T) {
	tokenCurve := DefaultTokenCurve()
	solCurve := DefaultSolCurve()

	for _, tc := range []struct {
		curve    Curve
		supply   uint64
		amount   uint64
		expected uint64
	}{
		{tokenCurve, 0, 1, 0},  // genesis pass is free
		{tokenCurve, 0, 0, 0},  // nothing purchased
		{tokenCurve, 3, 0, 0},  // nothing purchased
		{tokenCurve, 3, 1, 56250},
		{tokenCurve, 1, 10, 2_406_250},
		{solCurve, 0, 1, 0},
		{solCurve, 3, 1, 5_625_000},
		{solCurve, 1, 10, 240_625_000},
	} {
		actual, err := tc.curve.Price(tc.supply, tc.amount)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, actual, "supply=%d amount=%d", tc.supply, tc.amount)
	}
}

func TestSummationCurve_MonotonicInSupply(t *testing.T) {
	c := DefaultTokenCurve()

	var prev uint64
	for supply := uint64(1); supply < 1000; supply += 7 {
		price, err := c.Price(supply, 3)
		require.NoError(t, err)
		assert.Greater(t, price, prev)
		prev = price
	}
}

func TestSummationCurve_SplitPurchaseEquivalence(t *testing.T) {
	// Buying in two chunks costs the same as buying at once
	c := DefaultTokenCurve()

	whole, err := c.Price(5, 10)
	require.NoError(t, err)
	first, err := c.Price(5, 4)
	require.NoError(t, err)
	second, err := c.Price(9, 6)
	require.NoError(t, err)

	assert.Equal(t, whole, first+second)
}

func TestSummationCurve_Overflow(t *testing.T) {
	c := DefaultTokenCurve()

	_, err := c.Price(math.MaxUint64, 2)
	assert.Equal(t, ErrOverflow, err)

	_, err = c.Price(math.MaxUint64-1, 1)
	assert.Equal(t, ErrOverflow, err)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "0.05625", Quote(56250, 6).String())
	assert.Equal(t, "0.005625", Quote(5_625_000, 9).String())
}
