package http

import (
	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/DRSN-tech/foodie-cart/internal/usecase"
)

type CatalogItemResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Price       usecase.Price `json:"price"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	Description string        `json:"description"`
}

type CartLineResponse struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Price    usecase.Price `json:"price"`
	Image    string        `json:"image"`
	Qty      int           `json:"qty"`
	Subtotal string        `json:"subtotal"`
}

// CartResponse — представление корзины. Total — точная сумма, TotalDisplay — с двумя знаками.
type CartResponse struct {
	Items        []CartLineResponse `json:"items"`
	ItemCount    int                `json:"item_count"`
	Total        usecase.Price      `json:"total"`
	TotalDisplay string             `json:"total_display"`
}

// MutationResponse возвращается всеми изменяющими корзину запросами.
type MutationResponse struct {
	Changed bool         `json:"changed"`
	Item    string       `json:"item,omitempty"`
	Cart    CartResponse `json:"cart"`
}

type ChangeQuantityRequest struct {
	Delta *int `json:"delta"`
}

type ConfirmOrderResponse struct {
	Order   usecase.OrderRecord `json:"order"`
	Cart    CartResponse        `json:"cart"`
	Warning string              `json:"warning,omitempty"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// MAPPERS

func toCatalogResponse(items []domain.CatalogItem) []CatalogItemResponse {
	res := make([]CatalogItemResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toCatalogItemResponse(&it))
	}

	return res
}

func toCatalogItemResponse(it *domain.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Price:       usecase.Price{Decimal: it.Price},
		Category:    string(it.Category),
		Image:       it.Image,
		Description: it.Description,
	}
}

func toCartResponse(snap usecase.Snapshot) CartResponse {
	items := make([]CartLineResponse, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		items = append(items, CartLineResponse{
			ID:       l.ID,
			Name:     l.Name,
			Price:    usecase.Price{Decimal: l.Price},
			Image:    l.Image,
			Qty:      l.Qty,
			Subtotal: l.SubtotalString(),
		})
	}

	return CartResponse{
		Items:        items,
		ItemCount:    snap.ItemCount,
		Total:        usecase.Price{Decimal: snap.Total},
		TotalDisplay: snap.TotalString(),
	}
}

func toOrdersResponse(orders []domain.Order) []usecase.OrderRecord {
	res := make([]usecase.OrderRecord, 0, len(orders))
	for _, o := range orders {
		res = append(res, usecase.ToOrderRecord(&o))
	}

	return res
}

func toContactMessagesResponse(msgs []domain.ContactMessage) []usecase.ContactMessageRecord {
	res := make([]usecase.ContactMessageRecord, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, usecase.ToContactMessageRecord(&m))
	}

	return res
}
