package usecase

import (
	"context"

	"github.com/DRSN-tech/foodie-cart/internal/domain"
)

type CartUC interface {
	AddItem(ctx context.Context, itemID int64) (string, error)
	RemoveItem(ctx context.Context, itemID int64) (bool, error)
	ChangeQuantity(ctx context.Context, itemID int64, delta int) (bool, error)
	Clear(ctx context.Context) error
	Snapshot() Snapshot
	ItemCount() int
}

type OrderUC interface {
	ConfirmOrder(ctx context.Context) (*domain.Order, error)
	Orders(ctx context.Context) []domain.Order
	PreviewBill() string
}

type CatalogUC interface {
	All() []domain.CatalogItem
	ByCategory(category domain.Category) []domain.CatalogItem
	Featured() []domain.CatalogItem
	Get(id int64) (*domain.CatalogItem, bool)
}

type ContactUC interface {
	Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
	Messages(ctx context.Context) []domain.ContactMessage
}

// cartEngine нужен OrderUseCase для снимка и очистки корзины.
type cartEngine interface {
	Snapshot() Snapshot
	Clear(ctx context.Context) error
}
