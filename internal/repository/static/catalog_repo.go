package static

import (
	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/shopspring/decimal"
)

// CatalogRepo — неизменяемое меню, заданное при старте процесса.
type CatalogRepo struct {
	items []domain.CatalogItem
	byID  map[int64]int
}

// NewCatalogRepo создаёт каталог из items. Повторный id заменяет более раннюю позицию
// в индексе, поэтому вызывающий отвечает за уникальность.
func NewCatalogRepo(items []domain.CatalogItem) *CatalogRepo {
	r := &CatalogRepo{
		items: make([]domain.CatalogItem, len(items)),
		byID:  make(map[int64]int, len(items)),
	}
	copy(r.items, items)
	for i, it := range r.items {
		r.byID[it.ID] = i
	}

	return r
}

// NewDefaultCatalogRepo возвращает меню витрины.
func NewDefaultCatalogRepo() *CatalogRepo {
	return NewCatalogRepo(DefaultItems())
}

// List возвращает копию меню в порядке объявления.
func (r *CatalogRepo) List() []domain.CatalogItem {
	res := make([]domain.CatalogItem, len(r.items))
	copy(res, r.items)
	return res
}

func (r *CatalogRepo) GetByID(id int64) (*domain.CatalogItem, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}

	item := r.items[idx]
	return &item, true
}

func DefaultItems() []domain.CatalogItem {
	return []domain.CatalogItem{
		*domain.NewCatalogItem(1, "Margherita Pizza", decimal.RequireFromString("1000.99"), domain.CategoryPizza,
			"img/food/p1.jpg", "Classic pizza with tomato sauce, mozzarella, and basil"),
		*domain.NewCatalogItem(2, "Pepperoni Pizza", decimal.RequireFromString("850.00"), domain.CategoryPizza,
			"img/category/pizza.jpg", "Pizza topped with pepperoni and mozzarella cheese"),
		*domain.NewCatalogItem(3, "Cheeseburger", decimal.RequireFromString("450.50"), domain.CategoryBurger,
			"img/food/b1.jpg", "Juicy beef burger with cheese, lettuce, and tomato"),
		*domain.NewCatalogItem(4, "Chicken Burger", decimal.RequireFromString("550.70"), domain.CategoryBurger,
			"img/category/burger.jpg", "Grilled chicken breast with special sauce"),
		*domain.NewCatalogItem(5, "Club Sandwich", decimal.RequireFromString("800.00"), domain.CategorySandwich,
			"img/food/s1.jpg", "Triple-decker sandwich with turkey, bacon, and vegetables"),
		*domain.NewCatalogItem(6, "Veggie Sandwich", decimal.RequireFromString("500.00"), domain.CategorySandwich,
			"img/category/sandwich.jpg", "Fresh vegetables with hummus and sprouts"),
	}
}
