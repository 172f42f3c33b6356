package usecase

import (
	"context"
	"math"

	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
)

// CartUseCase владеет корзиной: применяет изменения, соблюдает инварианты
// (одна строка на id, qty >= 1) и сохраняет корзину после каждого изменения.
// Не предназначен для конкурентного использования.
type CartUseCase struct {
	catalog     CatalogRepository
	store       PersistentStore
	logger      logger.Logger
	cart        domain.Cart
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// NewCartUC создаёт движок корзины и загружает сохранённое состояние.
// Отсутствующее или повреждённое значение даёт пустую корзину.
func NewCartUC(ctx context.Context, catalog CatalogRepository, store PersistentStore, logger logger.Logger) *CartUseCase {
	c := &CartUseCase{
		catalog: catalog,
		store:   store,
		logger:  logger,
	}
	c.load(ctx)

	return c
}

// AddItem увеличивает qty существующей строки или добавляет новую с qty = 1.
// Возвращает название позиции; для неизвестного id — пустую строку и ничего не меняет.
func (c *CartUseCase) AddItem(ctx context.Context, itemID int64) (string, error) {
	const op = "CartUseCase.AddItem"

	item, ok := c.catalog.GetByID(itemID)
	if !ok {
		c.logger.Debugf("%s: item %d not found in catalog", op, itemID)
		return "", nil
	}

	if idx := c.cart.IndexOf(itemID); idx >= 0 && c.cart.Lines[idx].Qty == math.MaxInt {
		return "", e.Wrap(op, e.ErrInvalidDelta)
	}

	err := c.mutate(ctx, func(cart *domain.Cart) {
		if idx := cart.IndexOf(itemID); idx >= 0 {
			cart.Lines[idx].Qty++
			return
		}

		cart.Lines = append(cart.Lines, *domain.NewCartLine(item))
	})
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return item.Name, nil
}

// RemoveItem удаляет строку с данным id. Возвращает false, если строки не было.
func (c *CartUseCase) RemoveItem(ctx context.Context, itemID int64) (bool, error) {
	const op = "CartUseCase.RemoveItem"

	idx := c.cart.IndexOf(itemID)
	if idx < 0 {
		return false, nil
	}

	if err := c.mutate(ctx, func(cart *domain.Cart) { cart.Remove(idx) }); err != nil {
		return false, e.Wrap(op, err)
	}

	return true, nil
}

// ChangeQuantity прибавляет delta к qty строки. Если результат <= 0, строка удаляется.
// Положительная delta, переполняющая int, отклоняется с e.ErrInvalidDelta, корзина не меняется.
func (c *CartUseCase) ChangeQuantity(ctx context.Context, itemID int64, delta int) (bool, error) {
	const op = "CartUseCase.ChangeQuantity"

	idx := c.cart.IndexOf(itemID)
	if idx < 0 {
		return false, nil
	}

	qty := c.cart.Lines[idx].Qty + delta
	if delta > 0 && qty < c.cart.Lines[idx].Qty {
		return false, e.Wrap(op, e.ErrInvalidDelta)
	}

	err := c.mutate(ctx, func(cart *domain.Cart) {
		if qty <= 0 {
			cart.Remove(idx)
			return
		}

		cart.Lines[idx].Qty = qty
	})
	if err != nil {
		return false, e.Wrap(op, err)
	}

	return true, nil
}

// Clear очищает корзину. Вызывается после подтверждения заказа.
func (c *CartUseCase) Clear(ctx context.Context) error {
	const op = "CartUseCase.Clear"

	if err := c.mutate(ctx, func(cart *domain.Cart) { cart.Lines = nil }); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CartUseCase) Snapshot() Snapshot {
	return NewSnapshot(&c.cart)
}

func (c *CartUseCase) ItemCount() int {
	return c.cart.ItemCount()
}

// Subscribe регистрирует fn, которая вызывается после каждого применённого
// и сохранённого изменения. Возвращает функцию отписки.
func (c *CartUseCase) Subscribe(fn func(Snapshot)) func() {
	c.nextSubID++
	id := c.nextSubID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range c.subscribers {
			if s.id == id {
				c.subscribers = append(c.subscribers[:i:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}

// mutate применяет fn и сохраняет корзину. При ошибке записи состояние в памяти
// откатывается, чтобы память и хранилище не расходились.
func (c *CartUseCase) mutate(ctx context.Context, fn func(cart *domain.Cart)) error {
	prev := c.cart.Clone()
	fn(&c.cart)

	if err := c.store.Write(ctx, CartKey, ToCartRecords(c.cart.Lines)); err != nil {
		c.cart = prev
		c.logger.Warnf("cart change rolled back: %v", err)
		return err
	}

	c.notify()
	return nil
}

func (c *CartUseCase) notify() {
	if len(c.subscribers) == 0 {
		return
	}

	snap := c.Snapshot()
	for _, s := range c.subscribers {
		s.fn(snap)
	}
}

// load читает корзину из хранилища. Строки с qty <= 0 и повторные id отбрасываются.
func (c *CartUseCase) load(ctx context.Context) {
	var records []CartLineRecord
	if !c.store.Read(ctx, CartKey, &records) {
		return
	}

	for _, line := range ToCartLines(records) {
		if line.Qty <= 0 || c.cart.IndexOf(line.ID) >= 0 {
			c.logger.Warnf("dropping invalid stored cart line: id=%d qty=%d", line.ID, line.Qty)
			continue
		}

		c.cart.Lines = append(c.cart.Lines, line)
	}
}
