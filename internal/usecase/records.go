package usecase

import (
	"time"

	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/shopspring/decimal"
)

// timestampLayout совпадает с форматом Date.toISOString(): UTC, миллисекунды, суффикс Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Price хранится в JSON числом (не строкой) и читается без потери точности.
type Price struct {
	decimal.Decimal
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// CartLineRecord — JSON-представление строки корзины под ключом "cart".
type CartLineRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
	Image string `json:"image"`
	Qty   int    `json:"qty"`
}

// OrderRecord хранится в журнале "orders".
type OrderRecord struct {
	Items     []OrderItemRecord `json:"items"`
	Total     Price             `json:"total"`
	Timestamp string            `json:"timestamp"`
}

type OrderItemRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
	Qty   int    `json:"qty"`
}

// ContactMessageRecord хранится в журнале "contactMessages".
type ContactMessageRecord struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// MAPPERS

func ToCartRecords(lines []domain.CartLine) []CartLineRecord {
	res := make([]CartLineRecord, 0, len(lines))
	for _, l := range lines {
		res = append(res, CartLineRecord{
			ID:    l.ID,
			Name:  l.Name,
			Price: Price{l.Price},
			Image: l.Image,
			Qty:   l.Qty,
		})
	}

	return res
}

func ToCartLines(records []CartLineRecord) []domain.CartLine {
	res := make([]domain.CartLine, 0, len(records))
	for _, r := range records {
		res = append(res, domain.CartLine{
			ID:    r.ID,
			Name:  r.Name,
			Price: r.Price.Decimal,
			Image: r.Image,
			Qty:   r.Qty,
		})
	}

	return res
}

func ToOrderRecord(order *domain.Order) OrderRecord {
	items := make([]OrderItemRecord, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, OrderItemRecord{
			ID:    it.ID,
			Name:  it.Name,
			Price: Price{it.Price},
			Qty:   it.Qty,
		})
	}

	return OrderRecord{
		Items:     items,
		Total:     Price{order.Total},
		Timestamp: formatTimestamp(order.Timestamp),
	}
}

func ToOrder(record OrderRecord) domain.Order {
	items := make([]domain.OrderItem, 0, len(record.Items))
	for _, it := range record.Items {
		items = append(items, domain.OrderItem{
			ID:    it.ID,
			Name:  it.Name,
			Price: it.Price.Decimal,
			Qty:   it.Qty,
		})
	}

	return domain.Order{
		Items:     items,
		Total:     record.Total.Decimal,
		Timestamp: parseTimestamp(record.Timestamp),
	}
}

func ToContactMessageRecord(msg *domain.ContactMessage) ContactMessageRecord {
	return ContactMessageRecord{
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		Timestamp: formatTimestamp(msg.Timestamp),
	}
}

func ToContactMessage(record ContactMessageRecord) domain.ContactMessage {
	return domain.ContactMessage{
		Name:      record.Name,
		Email:     record.Email,
		Message:   record.Message,
		Timestamp: parseTimestamp(record.Timestamp),
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTimestamp возвращает нулевое время для нераспознанной строки.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}

	return t.UTC()
}
