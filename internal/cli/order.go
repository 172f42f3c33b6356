package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/DRSN-tech/foodie-cart/internal/app"
	"github.com/DRSN-tech/foodie-cart/internal/usecase"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/spf13/cobra"
)

func NewOrderCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Confirm and list orders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "confirm",
		Short: "Turn the current cart into an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				order, err := a.Orders.ConfirmOrder(cmd.Context())
				if errors.Is(err, e.ErrEmptyCart) {
					return WrapExitError(ExitFailure, "nothing to order", err)
				}
				if order == nil {
					return err
				}

				record := usecase.ToOrderRecord(order)
				printErr := printer{opts.Format, cmd.OutOrStdout()}.print(record, func(w io.Writer) {
					fmt.Fprintf(w, "Order confirmed: %d lines, total $%s\n", len(record.Items), order.Total.StringFixed(2))
				})
				if err != nil {
					// заказ записан, но корзина осталась
					return err
				}
				return printErr
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List confirmed orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				orders := a.Orders.Orders(cmd.Context())
				records := make([]usecase.OrderRecord, 0, len(orders))
				for _, o := range orders {
					records = append(records, usecase.ToOrderRecord(&o))
				}

				return printer{opts.Format, cmd.OutOrStdout()}.print(records, func(w io.Writer) {
					if len(records) == 0 {
						fmt.Fprintln(w, "No orders yet")
						return
					}
					for i, r := range records {
						fmt.Fprintf(w, "%d\t%s\t%d lines\t$%s\n", i+1, r.Timestamp, len(r.Items), r.Total.StringFixed(2))
					}
				})
			})
		},
	})

	return cmd
}
