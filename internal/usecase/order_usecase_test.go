package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	orders []*domain.Order
	err    error
}

func (p *recordingPublisher) PublishOrderConfirmed(_ context.Context, order *domain.Order) error {
	p.orders = append(p.orders, order)
	return p.err
}

type recordingArchive struct {
	bills []string
	err   error
}

func (a *recordingArchive) Archive(_ context.Context, _ *domain.Order, bill string) (string, error) {
	a.bills = append(a.bills, bill)
	return "receipts/test.txt", a.err
}

func fillCart(t *testing.T, f *fixture) {
	t.Helper()

	ctx := context.Background()
	for _, id := range []int64{1, 1, 3} {
		_, err := f.cart.AddItem(ctx, id)
		require.NoError(t, err)
	}
}

func TestOrderUseCase_ConfirmOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fillCart(t, f)

	order, err := f.orders.ConfirmOrder(ctx)
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "2452.48", order.Total.StringFixed(2))
	assert.Equal(t, fixedNow, order.Timestamp)
	assert.True(t, f.cart.Snapshot().Empty())

	orders := f.orders.Orders(ctx)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Total.Equal(order.Total))
	assert.Equal(t, fixedNow, orders[0].Timestamp)
	assert.Equal(t, "Margherita Pizza", orders[0].Items[0].Name)
	assert.Equal(t, 2, orders[0].Items[0].Qty)
}

func TestOrderUseCase_StoredLayout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fillCart(t, f)

	_, err := f.orders.ConfirmOrder(ctx)
	require.NoError(t, err)

	raw, err := f.backend.Get(ctx, OrdersKey)
	require.NoError(t, err)

	var stored []map[string]any
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, 2452.48, stored[0]["total"])
	assert.Equal(t, "2026-01-02T03:04:05.000Z", stored[0]["timestamp"])

	items := stored[0]["items"].([]any)
	first := items[0].(map[string]any)
	assert.Equal(t, 1000.99, first["price"])
	assert.Equal(t, float64(2), first["qty"])
	assert.NotContains(t, first, "image")
}

func TestOrderUseCase_AppendsToLog(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	fillCart(t, f)
	_, err := f.orders.ConfirmOrder(ctx)
	require.NoError(t, err)

	_, err = f.cart.AddItem(ctx, 6)
	require.NoError(t, err)
	_, err = f.orders.ConfirmOrder(ctx)
	require.NoError(t, err)

	orders := f.orders.Orders(ctx)
	require.Len(t, orders, 2)
	assert.Equal(t, "2452.48", orders[0].Total.StringFixed(2))
	assert.Equal(t, "500.00", orders[1].Total.StringFixed(2))
}

func TestOrderUseCase_EmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	order, err := f.orders.ConfirmOrder(ctx)
	assert.Nil(t, order)
	require.ErrorIs(t, err, e.ErrEmptyCart)
	assert.Empty(t, f.orders.Orders(ctx))
}

func TestOrderUseCase_WriteFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fillCart(t, f)

	f.backend.failWrites(OrdersKey, true)

	order, err := f.orders.ConfirmOrder(ctx)
	assert.Nil(t, order)
	require.ErrorIs(t, err, e.ErrStorageWrite)
	assert.Equal(t, 3, f.cart.ItemCount())
	assert.Empty(t, f.orders.Orders(ctx))
}

func TestOrderUseCase_CartNotCleared(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fillCart(t, f)

	f.backend.failWrites(CartKey, true)

	order, err := f.orders.ConfirmOrder(ctx)
	require.ErrorIs(t, err, e.ErrCartNotCleared)
	require.ErrorIs(t, err, e.ErrStorageWrite)
	require.NotNil(t, order)
	assert.Len(t, f.orders.Orders(ctx), 1)
	assert.Equal(t, 3, f.cart.ItemCount())
}

func TestOrderUseCase_CorruptLogIsReplaced(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.backend.Set(ctx, OrdersKey, []byte(`garbage`)))
	assert.Empty(t, f.orders.Orders(ctx))

	fillCart(t, f)
	_, err := f.orders.ConfirmOrder(ctx)
	require.NoError(t, err)
	assert.Len(t, f.orders.Orders(ctx), 1)
}

func TestOrderUseCase_SideEffects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pub := &recordingPublisher{}
	arch := &recordingArchive{}
	f.orders.publisher = pub
	f.orders.receipts = arch

	fillCart(t, f)
	bill := f.orders.PreviewBill()

	order, err := f.orders.ConfirmOrder(ctx)
	require.NoError(t, err)
	require.Len(t, pub.orders, 1)
	assert.Same(t, order, pub.orders[0])
	assert.Equal(t, []string{bill}, arch.bills)
}

func TestOrderUseCase_SideEffectFailuresAreIgnored(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.orders.publisher = &recordingPublisher{err: errors.New("kafka down")}
	f.orders.receipts = &recordingArchive{err: errors.New("minio down")}

	fillCart(t, f)
	_, err := f.orders.ConfirmOrder(ctx)
	require.NoError(t, err)
	assert.Len(t, f.orders.Orders(ctx), 1)
	assert.True(t, f.cart.Snapshot().Empty())
}
