package usecase

import (
	"context"

	"github.com/DRSN-tech/foodie-cart/internal/domain"
)

type OrderPublisher interface {
	PublishOrderConfirmed(ctx context.Context, order *domain.Order) error
}

type ReceiptArchive interface {
	Archive(ctx context.Context, order *domain.Order, bill string) (string, error)
}
