package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol-pie/passes/pkg/passes/data/config"
)

func RunTests(t *testing.T, s config.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s config.Store){
		testHappyPath,
		testInvalidRecord,
	} {
		tf(t, s)
		teardown()
	}
}

func testHappyPath(t *testing.T, s config.Store) {
	t.Run("testHappyPath", func(t *testing.T) {
		ctx := context.Background()

		_, err := s.Get(ctx)
		assert.Equal(t, config.ErrNotFound, err)

		start := time.Now()

		expected := &config.Record{
			Address:                "config",
			Bump:                   255,
			Admin:                  "admin",
			PaymentMint:            "mint",
			EscrowTokenWallet:      "escrow_token",
			EscrowSolWallet:        "escrow_sol",
			ProtocolFeePct:         20_000_000,
			OwnerFeePct:            20_000_000,
			ProtocolFeeTokenWallet: "protocol_fee",
		}
		cloned := expected.Clone()

		require.NoError(t, s.Put(ctx, expected))
		assert.EqualValues(t, 1, expected.Id)
		assert.True(t, expected.CreatedAt.After(start))

		actual, err := s.Get(ctx)
		require.NoError(t, err)
		assertEquivalentRecords(t, actual, &cloned)

		assert.Equal(t, config.ErrAlreadyExists, s.Put(ctx, expected))

		expected.ProtocolFeePct = 30_000_000
		expected.OwnerFeePct = 10_000_000
		expected.ProtocolFeeTokenWallet = "new_protocol_fee"
		require.NoError(t, s.Update(ctx, expected))

		actual, err = s.Get(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 30_000_000, actual.ProtocolFeePct)
		assert.EqualValues(t, 10_000_000, actual.OwnerFeePct)
		assert.Equal(t, "new_protocol_fee", actual.ProtocolFeeTokenWallet)
		assert.Equal(t, cloned.Admin, actual.Admin)
		assert.Equal(t, cloned.PaymentMint, actual.PaymentMint)
		assert.True(t, actual.LastUpdatedAt.After(start))
	})
}

func testInvalidRecord(t *testing.T, s config.Store) {
	t.Run("testInvalidRecord", func(t *testing.T) {
		ctx := context.Background()

		record := &config.Record{
			Address:                "config",
			Admin:                  "admin",
			PaymentMint:            "mint",
			EscrowTokenWallet:      "escrow_token",
			EscrowSolWallet:        "escrow_sol",
			ProtocolFeePct:         600_000_000,
			OwnerFeePct:            500_000_000,
			ProtocolFeeTokenWallet: "protocol_fee",
		}
		assert.Error(t, s.Put(ctx, record))

		record.OwnerFeePct = 0
		record.ProtocolFeePct = 0
		record.Admin = ""
		assert.Error(t, s.Put(ctx, record))

		_, err := s.Get(ctx)
		assert.Equal(t, config.ErrNotFound, err)

		record.Admin = "admin"
		assert.Equal(t, config.ErrNotFound, s.Update(ctx, record))
	})
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *config.Record) {
	assert.Equal(t, obj1.Address, obj2.Address)
	assert.Equal(t, obj1.Bump, obj2.Bump)
	assert.Equal(t, obj1.Admin, obj2.Admin)
	assert.Equal(t, obj1.PaymentMint, obj2.PaymentMint)
	assert.Equal(t, obj1.EscrowTokenWallet, obj2.EscrowTokenWallet)
	assert.Equal(t, obj1.EscrowSolWallet, obj2.EscrowSolWallet)
	assert.Equal(t, obj1.ProtocolFeePct, obj2.ProtocolFeePct)
	assert.Equal(t, obj1.OwnerFeePct, obj2.OwnerFeePct)
	assert.Equal(t, obj1.ProtocolFeeTokenWallet, obj2.ProtocolFeeTokenWallet)
}
