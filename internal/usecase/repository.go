package usecase

import (
	"context"

	"github.com/DRSN-tech/foodie-cart/internal/domain"
)

// Ключи постоянного хранилища.
const (
	CartKey            = "cart"
	OrdersKey          = "orders"
	ContactMessagesKey = "contactMessages"
)

type CatalogRepository interface {
	List() []domain.CatalogItem
	GetByID(id int64) (*domain.CatalogItem, bool)
}

// PersistentStore сериализует значения в JSON поверх key/value бэкенда.
// Read возвращает false, если значения нет или его не удалось прочитать;
// dst в этом случае может быть частично заполнен и должен быть сброшен вызывающим.
type PersistentStore interface {
	Read(ctx context.Context, key string, dst any) bool
	Write(ctx context.Context, key string, value any) error
}
