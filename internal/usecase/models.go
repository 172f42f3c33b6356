package usecase

import (
	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/shopspring/decimal"
)

// Snapshot — read-only представление корзины для отрисовки.
type Snapshot struct {
	Lines     []domain.CartLine
	Total     decimal.Decimal // точная сумма, без округления
	ItemCount int
}

func NewSnapshot(cart *domain.Cart) Snapshot {
	clone := cart.Clone()
	return Snapshot{
		Lines:     clone.Lines,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

func (s Snapshot) Empty() bool {
	return len(s.Lines) == 0
}

// TotalString округляет итог до двух знаков, только для отображения.
func (s Snapshot) TotalString() string {
	return s.Total.StringFixed(2)
}

// Line возвращает строку корзины по id.
func (s Snapshot) Line(id int64) (domain.CartLine, bool) {
	for _, l := range s.Lines {
		if l.ID == id {
			return l, true
		}
	}

	return domain.CartLine{}, false
}
