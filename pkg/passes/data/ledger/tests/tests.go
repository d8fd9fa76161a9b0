package tests

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol-pie/passes/pkg/passes/data/ledger"
)

func RunTests(t *testing.T, s ledger.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s ledger.Store){
		testHappyPath,
		testRailIsolation,
		testOverflow,
	} {
		tf(t, s)
		teardown()
	}
}

func testHappyPath(t *testing.T, s ledger.Store) {
	t.Run("testHappyPath", func(t *testing.T) {
		ctx := context.Background()

		_, err := s.Get(ctx, ledger.RailSol, "vault")
		assert.Equal(t, ledger.ErrNotFound, err)

		assert.Equal(t, ledger.ErrNotFound, s.Debit(ctx, ledger.RailSol, "vault", 1))

		require.NoError(t, s.Credit(ctx, ledger.RailSol, "vault", 100))
		require.NoError(t, s.Credit(ctx, ledger.RailSol, "vault", 50))

		actual, err := s.Get(ctx, ledger.RailSol, "vault")
		require.NoError(t, err)
		assert.Equal(t, ledger.RailSol, actual.Rail)
		assert.Equal(t, "vault", actual.Account)
		assert.EqualValues(t, 150, actual.Balance)

		require.NoError(t, s.Debit(ctx, ledger.RailSol, "vault", 120))

		actual, err = s.Get(ctx, ledger.RailSol, "vault")
		require.NoError(t, err)
		assert.EqualValues(t, 30, actual.Balance)

		assert.Equal(t, ledger.ErrInsufficientFunds, s.Debit(ctx, ledger.RailSol, "vault", 31))

		// Failed debits leave the balance untouched
		actual, err = s.Get(ctx, ledger.RailSol, "vault")
		require.NoError(t, err)
		assert.EqualValues(t, 30, actual.Balance)

		require.NoError(t, s.Debit(ctx, ledger.RailSol, "vault", 30))

		actual, err = s.Get(ctx, ledger.RailSol, "vault")
		require.NoError(t, err)
		assert.EqualValues(t, 0, actual.Balance)
	})
}

func testRailIsolation(t *testing.T, s ledger.Store) {
	t.Run("testRailIsolation", func(t *testing.T) {
		ctx := context.Background()

		require.NoError(t, s.Credit(ctx, ledger.RailSol, "vault", 100))
		require.NoError(t, s.Credit(ctx, ledger.RailToken, "vault", 200))

		solRecord, err := s.Get(ctx, ledger.RailSol, "vault")
		require.NoError(t, err)
		assert.EqualValues(t, 100, solRecord.Balance)

		tokenRecord, err := s.Get(ctx, ledger.RailToken, "vault")
		require.NoError(t, err)
		assert.EqualValues(t, 200, tokenRecord.Balance)

		require.NoError(t, s.Debit(ctx, ledger.RailToken, "vault", 200))

		solRecord, err = s.Get(ctx, ledger.RailSol, "vault")
		require.NoError(t, err)
		assert.EqualValues(t, 100, solRecord.Balance)

		_, err = s.Get(ctx, ledger.Rail("invalid"), "vault")
		assert.Error(t, err)
	})
}

func testOverflow(t *testing.T, s ledger.Store) {
	t.Run("testOverflow", func(t *testing.T) {
		ctx := context.Background()

		assert.Equal(t, ledger.ErrOverflow, s.Credit(ctx, ledger.RailToken, "vault", math.MaxUint64))

		require.NoError(t, s.Credit(ctx, ledger.RailToken, "vault", math.MaxInt64))
		assert.Equal(t, ledger.ErrOverflow, s.Credit(ctx, ledger.RailToken, "vault", 1))

		actual, err := s.Get(ctx, ledger.RailToken, "vault")
		require.NoError(t, err)
		assert.EqualValues(t, math.MaxInt64, actual.Balance)
	})
}
