package usecase

import (
	"fmt"
	"strings"
)

// RenderBill формирует текст счёта. Суммы округляются до двух знаков только здесь.
func RenderBill(snap Snapshot) string {
	var b strings.Builder
	b.WriteString("🧾 FOODIE DELIGHT - BILL\n\n")

	for _, l := range snap.Lines {
		fmt.Fprintf(&b, "%s  x%d  = $%s\n", l.Name, l.Qty, l.SubtotalString())
	}

	b.WriteString("\n------------------------\n")
	fmt.Fprintf(&b, "TOTAL: $%s\n", snap.TotalString())
	b.WriteString("Thank you for ordering ❤️")

	return b.String()
}
