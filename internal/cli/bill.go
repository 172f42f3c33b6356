package cli

import (
	"fmt"
	"io"

	"github.com/DRSN-tech/foodie-cart/internal/app"
	"github.com/spf13/cobra"
)

func NewBillCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bill",
		Short: "Preview the bill for the current cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				bill := a.Orders.PreviewBill()
				return printer{opts.Format, cmd.OutOrStdout()}.print(map[string]string{"bill": bill}, func(w io.Writer) {
					fmt.Fprintln(w, bill)
				})
			})
		},
	}
}
