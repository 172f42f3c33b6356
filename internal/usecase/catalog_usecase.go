package usecase

import "github.com/DRSN-tech/foodie-cart/internal/domain"

// сколько первых позиций меню показывать на главной
const featuredCount = 3

type CatalogUseCase struct {
	repo CatalogRepository
}

func NewCatalogUC(repo CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (c *CatalogUseCase) All() []domain.CatalogItem {
	return c.repo.List()
}

// ByCategory фильтрует меню. domain.CategoryAll и пустая строка возвращают всё меню.
func (c *CatalogUseCase) ByCategory(category domain.Category) []domain.CatalogItem {
	items := c.repo.List()
	if category == domain.CategoryAll || category == "" {
		return items
	}

	res := make([]domain.CatalogItem, 0)
	for _, it := range items {
		if it.Category == category {
			res = append(res, it)
		}
	}

	return res
}

func (c *CatalogUseCase) Featured() []domain.CatalogItem {
	items := c.repo.List()
	return items[:min(featuredCount, len(items))]
}

func (c *CatalogUseCase) Get(id int64) (*domain.CatalogItem, bool) {
	return c.repo.GetByID(id)
}
