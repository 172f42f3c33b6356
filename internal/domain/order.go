package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order — неизменяемый снимок оформленной корзины.
type Order struct {
	Items     []OrderItem
	Total     decimal.Decimal
	Timestamp time.Time
}

type OrderItem struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Qty   int
}

// NewOrder строит заказ из строк корзины. Итог округляется до копеек,
// как его видит покупатель.
func NewOrder(lines []CartLine, total decimal.Decimal, now time.Time) *Order {
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItem{
			ID:    l.ID,
			Name:  l.Name,
			Price: l.Price,
			Qty:   l.Qty,
		})
	}

	return &Order{
		Items:     items,
		Total:     total.Round(2),
		Timestamp: now.UTC(),
	}
}
