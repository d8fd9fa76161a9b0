package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol-pie/passes/pkg/passes/data/balance"
)

func RunTests(t *testing.T, s balance.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s balance.Store){
		testHappyPath,
		testGetAllByOwner,
	} {
		tf(t, s)
		teardown()
	}
}

func testHappyPath(t *testing.T, s balance.Store) {
	t.Run("testHappyPath", func(t *testing.T) {
		ctx := context.Background()

		_, err := s.Get(ctx, "owner", "holder")
		assert.Equal(t, balance.ErrNotFound, err)

		start := time.Now()

		expected := &balance.Record{
			Address: "balance_pda",
			Bump:    253,
			Owner:   "owner",
			Holder:  "holder",
			Amount:  10,
		}
		cloned := expected.Clone()

		require.NoError(t, s.Save(ctx, expected))
		assert.EqualValues(t, 1, expected.Id)
		assert.True(t, expected.LastUpdatedAt.After(start))

		actual, err := s.Get(ctx, "owner", "holder")
		require.NoError(t, err)
		assertEquivalentRecords(t, actual, &cloned)

		// The pair is directional
		_, err = s.Get(ctx, "holder", "owner")
		assert.Equal(t, balance.ErrNotFound, err)

		expected.Amount = 25
		require.NoError(t, s.Save(ctx, expected))
		assert.EqualValues(t, 1, expected.Id)

		actual, err = s.Get(ctx, "owner", "holder")
		require.NoError(t, err)
		assert.EqualValues(t, 25, actual.Amount)
	})
}

func testGetAllByOwner(t *testing.T, s balance.Store) {
	t.Run("testGetAllByOwner", func(t *testing.T) {
		ctx := context.Background()

		_, err := s.GetAllByOwner(ctx, "owner")
		assert.Equal(t, balance.ErrNotFound, err)

		for i := 0; i < 3; i++ {
			record := &balance.Record{
				Address: fmt.Sprintf("balance_pda%d", i),
				Bump:    255,
				Owner:   "owner",
				Holder:  fmt.Sprintf("holder%d", i),
				Amount:  uint64(i + 1),
			}
			require.NoError(t, s.Save(ctx, record))
		}

		require.NoError(t, s.Save(ctx, &balance.Record{
			Address: "other_balance_pda",
			Bump:    255,
			Owner:   "other_owner",
			Holder:  "holder0",
			Amount:  100,
		}))

		actual, err := s.GetAllByOwner(ctx, "owner")
		require.NoError(t, err)
		require.Len(t, actual, 3)
		for i, record := range actual {
			assert.Equal(t, "owner", record.Owner)
			assert.Equal(t, fmt.Sprintf("holder%d", i), record.Holder)
			assert.EqualValues(t, i+1, record.Amount)
		}
	})
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *balance.Record) {
	assert.Equal(t, obj1.Address, obj2.Address)
	assert.Equal(t, obj1.Bump, obj2.Bump)
	assert.Equal(t, obj1.Owner, obj2.Owner)
	assert.Equal(t, obj1.Holder, obj2.Holder)
	assert.Equal(t, obj1.Amount, obj2.Amount)
}
