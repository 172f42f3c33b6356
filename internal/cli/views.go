package cli

import (
	"fmt"
	"io"

	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/DRSN-tech/foodie-cart/internal/usecase"
)

type catalogItemView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Price       usecase.Price `json:"price"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
}

type cartLineView struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Price    usecase.Price `json:"price"`
	Qty      int           `json:"qty"`
	Subtotal string        `json:"subtotal"`
}

type cartView struct {
	Items     []cartLineView `json:"items"`
	ItemCount int            `json:"item_count"`
	Total     string         `json:"total"`
}

func toCatalogView(items []domain.CatalogItem) []catalogItemView {
	res := make([]catalogItemView, 0, len(items))
	for _, it := range items {
		res = append(res, catalogItemView{
			ID:          it.ID,
			Name:        it.Name,
			Price:       usecase.Price{Decimal: it.Price},
			Category:    string(it.Category),
			Description: it.Description,
		})
	}

	return res
}

func toCartView(snap usecase.Snapshot) cartView {
	items := make([]cartLineView, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		items = append(items, cartLineView{
			ID:       l.ID,
			Name:     l.Name,
			Price:    usecase.Price{Decimal: l.Price},
			Qty:      l.Qty,
			Subtotal: l.SubtotalString(),
		})
	}

	return cartView{Items: items, ItemCount: snap.ItemCount, Total: snap.TotalString()}
}

func writeCatalog(w io.Writer, items []catalogItemView) {
	for _, it := range items {
		fmt.Fprintf(w, "%d\t%-16s\t$%s\t%s\n", it.ID, it.Name, it.Price.StringFixed(2), it.Category)
	}
}

func writeCart(w io.Writer, v cartView) {
	if len(v.Items) == 0 {
		fmt.Fprintln(w, "Your cart is empty")
		return
	}

	for _, l := range v.Items {
		fmt.Fprintf(w, "%d\t%-16s\tx%d\t$%s\n", l.ID, l.Name, l.Qty, l.Subtotal)
	}
	fmt.Fprintf(w, "Items: %d\tTotal: $%s\n", v.ItemCount, v.Total)
}
