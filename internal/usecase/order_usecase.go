package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
)

// OrderUseCase превращает текущую корзину в заказ и ведёт журнал заказов.
type OrderUseCase struct {
	cart      cartEngine
	store     PersistentStore
	publisher OrderPublisher // может быть nil
	receipts  ReceiptArchive // может быть nil
	logger    logger.Logger
	now       func() time.Time
}

func NewOrderUC(
	cart cartEngine,
	store PersistentStore,
	publisher OrderPublisher,
	receipts ReceiptArchive,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		cart:      cart,
		store:     store,
		publisher: publisher,
		receipts:  receipts,
		logger:    logger,
		now:       time.Now,
	}
}

// ConfirmOrder оформляет заказ из текущей корзины.
// Порядок: запись в журнал "orders", затем очистка корзины. Если запись не удалась,
// корзина не трогается. Если не удалась очистка, заказ уже сохранён и возвращается
// вместе с ошибкой e.ErrCartNotCleared.
func (o *OrderUseCase) ConfirmOrder(ctx context.Context) (*domain.Order, error) {
	const op = "OrderUseCase.ConfirmOrder"

	snap := o.cart.Snapshot()
	if snap.Empty() {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	order := domain.NewOrder(snap.Lines, snap.Total, o.now())

	var records []OrderRecord
	if !o.store.Read(ctx, OrdersKey, &records) {
		records = nil
	}
	records = append(records, ToOrderRecord(order))

	if err := o.store.Write(ctx, OrdersKey, records); err != nil {
		return nil, e.Wrap(op, err)
	}
	o.logger.Infof("order confirmed: items=%d total=%s", len(order.Items), order.Total.StringFixed(2))

	if err := o.cart.Clear(ctx); err != nil {
		return order, e.Wrap(op, fmt.Errorf("%w: %w", e.ErrCartNotCleared, err))
	}

	o.afterConfirm(ctx, order, RenderBill(snap))

	return order, nil
}

// Orders возвращает журнал заказов. Отсутствующий или повреждённый журнал — пустой список.
func (o *OrderUseCase) Orders(ctx context.Context) []domain.Order {
	var records []OrderRecord
	if !o.store.Read(ctx, OrdersKey, &records) {
		return []domain.Order{}
	}

	res := make([]domain.Order, 0, len(records))
	for _, r := range records {
		res = append(res, ToOrder(r))
	}

	return res
}

// PreviewBill возвращает текст счёта по текущей корзине.
func (o *OrderUseCase) PreviewBill() string {
	return RenderBill(o.cart.Snapshot())
}

// afterConfirm выполняет необязательные побочные действия. Ошибки только логируются:
// заказ к этому моменту уже сохранён.
func (o *OrderUseCase) afterConfirm(ctx context.Context, order *domain.Order, bill string) {
	if o.publisher != nil {
		if err := o.publisher.PublishOrderConfirmed(ctx, order); err != nil {
			o.logger.Warnf("failed to publish order event: %v", err)
		}
	}

	if o.receipts != nil {
		key, err := o.receipts.Archive(ctx, order, bill)
		if err != nil {
			o.logger.Warnf("failed to archive receipt: %v", err)
			return
		}
		o.logger.Debugf("receipt archived: %s", key)
	}
}
