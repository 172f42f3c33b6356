package domain

// Category позиции меню
type Category string

const (
	CategoryPizza    Category = "pizza"
	CategoryBurger   Category = "burger"
	CategorySandwich Category = "sandwich"

	// CategoryAll не является категорией позиции, это фильтр «без фильтра».
	CategoryAll Category = "all"
)

// Categories возвращает фиксированный набор категорий в порядке отображения.
func Categories() []Category {
	return []Category{CategoryPizza, CategoryBurger, CategorySandwich}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}
