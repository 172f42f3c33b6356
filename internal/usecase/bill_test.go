package usecase

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestRenderBill(t *testing.T) {
	g := goldie.New(t)

	f := newFixture(t)
	fillCart(t, f)
	g.Assert(t, "bill_two_lines", []byte(f.orders.PreviewBill()))
}

func TestRenderBill_Empty(t *testing.T) {
	g := goldie.New(t)

	f := newFixture(t)
	g.Assert(t, "bill_empty", []byte(f.orders.PreviewBill()))
}

func TestRenderBill_RoundsOnlyForDisplay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for range 3 {
		_, err := f.cart.AddItem(ctx, 4)
		require.NoError(t, err)
	}

	snap := f.cart.Snapshot()
	require.Equal(t, "1652.1", snap.Total.String())
	require.Contains(t, RenderBill(snap), "Chicken Burger  x3  = $1652.10\n")
	require.Contains(t, RenderBill(snap), "TOTAL: $1652.10\n")
}
