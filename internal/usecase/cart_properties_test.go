package usecase

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants: одна строка на id, qty >= 1, итог равен сумме подытогов.
func checkInvariants(t *testing.T, snap Snapshot) {
	t.Helper()

	seen := make(map[int64]bool)
	total := decimal.Zero
	count := 0
	for _, l := range snap.Lines {
		require.False(t, seen[l.ID], "duplicate line %d", l.ID)
		require.GreaterOrEqual(t, l.Qty, 1, "line %d", l.ID)
		seen[l.ID] = true
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Qty))))
		count += l.Qty
	}

	require.True(t, total.Equal(snap.Total), "total %s != %s", snap.Total, total)
	require.Equal(t, count, snap.ItemCount)
}

func TestCartUseCase_RandomSequencesKeepInvariants(t *testing.T) {
	ctx := context.Background()

	for seed := uint64(1); seed <= 20; seed++ {
		f := newFixture(t)
		rnd := rand.New(rand.NewPCG(seed, seed*31))

		for step := 0; step < 200; step++ {
			id := int64(rnd.IntN(8)) // 0 и 7 отсутствуют в каталоге
			var err error
			switch rnd.IntN(4) {
			case 0, 1:
				_, err = f.cart.AddItem(ctx, id)
			case 2:
				_, err = f.cart.RemoveItem(ctx, id)
			case 3:
				_, err = f.cart.ChangeQuantity(ctx, id, rnd.IntN(7)-3)
			}
			require.NoError(t, err)
			checkInvariants(t, f.cart.Snapshot())
		}

		restarted := newFixtureWithBackend(t, f.backend)
		assertSameLines(t, f.cart.Snapshot(), restarted.cart.Snapshot())
	}
}

func TestCartUseCase_AddThenRemoveRestores(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, id := range []int64{2, 2, 5} {
		_, err := f.cart.AddItem(ctx, id)
		require.NoError(t, err)
	}
	before := f.cart.Snapshot()

	_, err := f.cart.AddItem(ctx, 4)
	require.NoError(t, err)
	removed, err := f.cart.RemoveItem(ctx, 4)
	require.NoError(t, err)
	require.True(t, removed)

	assert.Equal(t, before, f.cart.Snapshot())
}

func TestCartUseCase_NegativeDeltaEqualsRemove(t *testing.T) {
	ctx := context.Background()
	viaDelta, viaRemove := newFixture(t), newFixture(t)

	for _, f := range []*fixture{viaDelta, viaRemove} {
		for _, id := range []int64{1, 3, 3, 3, 6} {
			_, err := f.cart.AddItem(ctx, id)
			require.NoError(t, err)
		}
	}

	_, err := viaDelta.cart.ChangeQuantity(ctx, 3, -3)
	require.NoError(t, err)
	_, err = viaRemove.cart.RemoveItem(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, viaRemove.cart.Snapshot(), viaDelta.cart.Snapshot())
}
