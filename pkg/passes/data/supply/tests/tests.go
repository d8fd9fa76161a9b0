package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol-pie/passes/pkg/passes/data/supply"
)

func RunTests(t *testing.T, s supply.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s supply.Store){
		testHappyPath,
		testMultipleOwners,
	} {
		tf(t, s)
		teardown()
	}
}

func testHappyPath(t *testing.T, s supply.Store) {
	t.Run("testHappyPath", func(t *testing.T) {
		ctx := context.Background()

		_, err := s.Get(ctx, "owner")
		assert.Equal(t, supply.ErrNotFound, err)

		start := time.Now()

		expected := &supply.Record{
			Address: "supply_pda",
			Bump:    254,
			Owner:   "owner",
			Amount:  1,
		}
		cloned := expected.Clone()

		require.NoError(t, s.Save(ctx, expected))
		assert.EqualValues(t, 1, expected.Id)
		assert.True(t, expected.LastUpdatedAt.After(start))

		actual, err := s.Get(ctx, "owner")
		require.NoError(t, err)
		assertEquivalentRecords(t, actual, &cloned)

		expected.Amount = 11
		require.NoError(t, s.Save(ctx, expected))
		assert.EqualValues(t, 1, expected.Id)

		actual, err = s.Get(ctx, "owner")
		require.NoError(t, err)
		assert.EqualValues(t, 11, actual.Amount)
	})
}

func testMultipleOwners(t *testing.T, s supply.Store) {
	t.Run("testMultipleOwners", func(t *testing.T) {
		ctx := context.Background()

		for i, owner := range []string{"owner1", "owner2", "owner3"} {
			record := &supply.Record{
				Address: owner + "_supply_pda",
				Bump:    255,
				Owner:   owner,
				Amount:  uint64(i + 1),
			}
			require.NoError(t, s.Save(ctx, record))
		}

		for i, owner := range []string{"owner1", "owner2", "owner3"} {
			actual, err := s.Get(ctx, owner)
			require.NoError(t, err)
			assert.Equal(t, owner, actual.Owner)
			assert.EqualValues(t, i+1, actual.Amount)
		}
	})
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *supply.Record) {
	assert.Equal(t, obj1.Address, obj2.Address)
	assert.Equal(t, obj1.Bump, obj2.Bump)
	assert.Equal(t, obj1.Owner, obj2.Owner)
	assert.Equal(t, obj1.Amount, obj2.Amount)
}
