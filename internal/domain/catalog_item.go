package domain

import "github.com/shopspring/decimal"

// CatalogItem описывает позицию меню. Неизменяема в течение жизни процесса.
type CatalogItem struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Category    Category
	Image       string // путь к ассету
	Description string
}

func NewCatalogItem(id int64, name string, price decimal.Decimal, category Category, image string, description string) *CatalogItem {
	return &CatalogItem{
		ID:          id,
		Name:        name,
		Price:       price,
		Category:    category,
		Image:       image,
		Description: description,
	}
}
