package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineQty(t *testing.T, snap Snapshot, id int64) int {
	t.Helper()

	l, ok := snap.Line(id)
	if !ok {
		return 0
	}
	return l.Qty
}

// assertSameLines сравнивает строки по значению: 850.00 и 850 считаются одной ценой.
func assertSameLines(t *testing.T, want, got Snapshot) {
	t.Helper()

	require.Len(t, got.Lines, len(want.Lines))
	for i := range want.Lines {
		w, g := want.Lines[i], got.Lines[i]
		assert.Equal(t, w.ID, g.ID)
		assert.Equal(t, w.Name, g.Name)
		assert.Equal(t, w.Image, g.Image)
		assert.Equal(t, w.Qty, g.Qty)
		assert.True(t, w.Price.Equal(g.Price), "price of %d: %s != %s", w.ID, w.Price, g.Price)
	}
}

func TestCartUseCase_AddItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	name, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Margherita Pizza", name)

	_, err = f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, 3)
	require.NoError(t, err)

	snap := f.cart.Snapshot()
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, int64(1), snap.Lines[0].ID)
	assert.Equal(t, 2, snap.Lines[0].Qty)
	assert.Equal(t, int64(3), snap.Lines[1].ID)
	assert.Equal(t, 1, snap.Lines[1].Qty)
	assert.Equal(t, "2452.48", snap.TotalString())
	assert.Equal(t, 3, snap.ItemCount)
	assert.Equal(t, 3, f.cart.ItemCount())
}

func TestCartUseCase_AddUnknownItem(t *testing.T) {
	f := newFixture(t)

	name, err := f.cart.AddItem(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, name)
	assert.True(t, f.cart.Snapshot().Empty())

	// неизвестный id не должен приводить к записи
	data, err := f.backend.Get(context.Background(), CartKey)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, id := range []int64{1, 2, 3} {
		_, err := f.cart.AddItem(ctx, id)
		require.NoError(t, err)
	}

	removed, err := f.cart.RemoveItem(ctx, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	snap := f.cart.Snapshot()
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, int64(1), snap.Lines[0].ID)
	assert.Equal(t, int64(3), snap.Lines[1].ID)

	removed, err = f.cart.RemoveItem(ctx, 2)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCartUseCase_ChangeQuantity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.cart.AddItem(ctx, 5)
	require.NoError(t, err)

	changed, err := f.cart.ChangeQuantity(ctx, 5, 4)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 5, lineQty(t, f.cart.Snapshot(), 5))

	changed, err = f.cart.ChangeQuantity(ctx, 5, -2)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 3, lineQty(t, f.cart.Snapshot(), 5))

	// уход в ноль и ниже удаляет строку
	changed, err = f.cart.ChangeQuantity(ctx, 5, -10)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, f.cart.Snapshot().Empty())

	changed, err = f.cart.ChangeQuantity(ctx, 5, 1)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestCartUseCase_ChangeQuantityZeroDelta(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.cart.AddItem(ctx, 2)
	require.NoError(t, err)

	changed, err := f.cart.ChangeQuantity(ctx, 2, 0)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, lineQty(t, f.cart.Snapshot(), 2))
}

func TestCartUseCase_ChangeQuantityOverflow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	_, err = f.cart.ChangeQuantity(ctx, 1, 2)
	require.NoError(t, err)

	changed, err := f.cart.ChangeQuantity(ctx, 1, math.MaxInt)
	require.ErrorIs(t, err, e.ErrInvalidDelta)
	assert.False(t, changed)
	assert.Equal(t, 3, lineQty(t, f.cart.Snapshot(), 1))

	// в хранилище осталась прежняя корзина
	reloaded := newFixtureWithBackend(t, f.backend)
	assert.Equal(t, 3, lineQty(t, reloaded.cart.Snapshot(), 1))

	// qty может дойти ровно до MaxInt, но не дальше
	_, err = f.cart.ChangeQuantity(ctx, 1, math.MaxInt-3)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, f.cart.ItemCount())

	name, err := f.cart.AddItem(ctx, 1)
	require.ErrorIs(t, err, e.ErrInvalidDelta)
	assert.Empty(t, name)
	assert.Equal(t, math.MaxInt, lineQty(t, f.cart.Snapshot(), 1))
}

func TestCartUseCase_Clear(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, f.cart.Clear(ctx))
	assert.True(t, f.cart.Snapshot().Empty())

	var records []CartLineRecord
	require.True(t, f.store.Read(ctx, CartKey, &records))
	assert.Empty(t, records)
}

func TestCartUseCase_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, 6)
	require.NoError(t, err)

	restarted := newFixtureWithBackend(t, f.backend)
	before, after := f.cart.Snapshot(), restarted.cart.Snapshot()
	assertSameLines(t, before, after)
	assert.True(t, before.Total.Equal(after.Total))
}

func TestCartUseCase_LoadDropsInvalidLines(t *testing.T) {
	ctx := context.Background()
	backend := newFlakyBackend()
	raw := `[
		{"id":1,"name":"Margherita Pizza","price":1000.99,"image":"a.png","qty":2},
		{"id":2,"name":"Pepperoni Pizza","price":850,"image":"b.png","qty":0},
		{"id":1,"name":"Margherita Pizza","price":1000.99,"image":"a.png","qty":5},
		{"id":3,"name":"Cheeseburger","price":450.5,"image":"c.png","qty":-1}
	]`
	require.NoError(t, backend.Set(ctx, CartKey, []byte(raw)))

	f := newFixtureWithBackend(t, backend)
	snap := f.cart.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, int64(1), snap.Lines[0].ID)
	assert.Equal(t, 2, snap.Lines[0].Qty)
	assert.Equal(t, "1000.99", snap.Lines[0].Price.String())
}

func TestCartUseCase_LoadCorruptValue(t *testing.T) {
	backend := newFlakyBackend()
	require.NoError(t, backend.Set(context.Background(), CartKey, []byte(`{"not":"a list"`)))

	f := newFixtureWithBackend(t, backend)
	assert.True(t, f.cart.Snapshot().Empty())
}

func TestCartUseCase_WriteFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)

	f.backend.failWrites(CartKey, true)

	_, err = f.cart.AddItem(ctx, 1)
	require.ErrorIs(t, err, e.ErrStorageWrite)
	_, err = f.cart.AddItem(ctx, 4)
	require.ErrorIs(t, err, e.ErrStorageWrite)
	_, err = f.cart.RemoveItem(ctx, 1)
	require.ErrorIs(t, err, e.ErrStorageWrite)
	_, err = f.cart.ChangeQuantity(ctx, 1, 3)
	require.ErrorIs(t, err, e.ErrStorageWrite)
	require.ErrorIs(t, f.cart.Clear(ctx), e.ErrStorageWrite)

	snap := f.cart.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 1, snap.Lines[0].Qty)

	f.backend.failWrites(CartKey, false)
	restarted := newFixtureWithBackend(t, f.backend)
	assertSameLines(t, snap, restarted.cart.Snapshot())
}

func TestCartUseCase_SnapshotIsIndependent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)

	snap := f.cart.Snapshot()
	snap.Lines[0].Qty = 100

	assert.Equal(t, 1, lineQty(t, f.cart.Snapshot(), 1))
}

func TestCartUseCase_Subscribe(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var counts []int
	unsubscribe := f.cart.Subscribe(func(s Snapshot) { counts = append(counts, s.ItemCount) })

	_, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, 1)
	require.NoError(t, err)

	// неизвестный id и неудачная запись не уведомляют
	_, err = f.cart.AddItem(ctx, 99)
	require.NoError(t, err)
	f.backend.failWrites(CartKey, true)
	_, err = f.cart.AddItem(ctx, 2)
	require.Error(t, err)
	f.backend.failWrites(CartKey, false)

	unsubscribe()
	_, err = f.cart.AddItem(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, counts)
}
