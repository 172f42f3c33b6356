package domain

import "github.com/shopspring/decimal"

// CartLine — строка корзины. Name, Price и Image копируются из каталога
// в момент добавления и дальше из каталога не перечитываются.
type CartLine struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Image string
	Qty   int // всегда >= 1
}

func NewCartLine(item *CatalogItem) *CartLine {
	return &CartLine{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Image: item.Image,
		Qty:   1,
	}
}

// Subtotal возвращает price × qty без округления.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// SubtotalString округляет подытог до копеек, только для отображения.
func (l CartLine) SubtotalString() string {
	return l.Subtotal().StringFixed(2)
}

// Cart — упорядоченные по времени добавления строки, не более одной на ID.
type Cart struct {
	Lines []CartLine
}

// IndexOf возвращает позицию строки с данным id или -1.
func (c *Cart) IndexOf(id int64) int {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			return i
		}
	}

	return -1
}

// Remove удаляет строку по индексу, сохраняя порядок остальных.
func (c *Cart) Remove(idx int) {
	c.Lines = append(c.Lines[:idx:idx], c.Lines[idx+1:]...)
}

// Total считает точную сумму price × qty по всем строкам.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}

	return total
}

// ItemCount суммирует количества по всем строкам.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Qty
	}

	return count
}

// Clone возвращает независимую копию корзины.
func (c *Cart) Clone() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
