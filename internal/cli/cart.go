package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/DRSN-tech/foodie-cart/internal/app"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/spf13/cobra"
)

type mutationView struct {
	Changed bool     `json:"changed"`
	Message string   `json:"message"`
	Cart    cartView `json:"cart"`
}

func NewCartCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the cart",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				view := toCartView(a.Cart.Snapshot())
				return printer{opts.Format, cmd.OutOrStdout()}.print(view, func(w io.Writer) {
					writeCart(w, view)
				})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <item-id>",
		Short: "Add one item to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			return opts.withApp(cmd, func(a *app.App) error {
				name, err := a.Cart.AddItem(cmd.Context(), id)
				if err != nil {
					return err
				}

				msg := fmt.Sprintf("Item %d is not on the menu", id)
				if name != "" {
					msg = fmt.Sprintf("%s added to cart", name)
				}
				return printMutation(opts, cmd, a, name != "", msg)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			return opts.withApp(cmd, func(a *app.App) error {
				changed, err := a.Cart.RemoveItem(cmd.Context(), id)
				if err != nil {
					return err
				}

				msg := fmt.Sprintf("Item %d is not in the cart", id)
				if changed {
					msg = fmt.Sprintf("Item %d removed", id)
				}
				return printMutation(opts, cmd, a, changed, msg)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "qty <item-id> <delta>",
		Short: "Change the quantity of a line by delta",
		Long: `Change the quantity of a line by delta, e.g. "foodie cart qty 1 -- -1".
A line whose quantity drops to zero or below is removed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid delta", e.Wrap(args[1], e.ErrInvalidDelta))
			}

			return opts.withApp(cmd, func(a *app.App) error {
				changed, err := a.Cart.ChangeQuantity(cmd.Context(), id, delta)
				if err != nil {
					return err
				}

				msg := fmt.Sprintf("Item %d is not in the cart", id)
				if changed {
					msg = fmt.Sprintf("Item %d quantity changed by %d", id, delta)
				}
				return printMutation(opts, cmd, a, changed, msg)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				if err := a.Cart.Clear(cmd.Context()); err != nil {
					return err
				}
				return printMutation(opts, cmd, a, true, "Cart cleared")
			})
		},
	})

	return cmd
}

func printMutation(opts *RootOptions, cmd *cobra.Command, a *app.App, changed bool, msg string) error {
	view := mutationView{Changed: changed, Message: msg, Cart: toCartView(a.Cart.Snapshot())}

	return printer{opts.Format, cmd.OutOrStdout()}.print(view, func(w io.Writer) {
		fmt.Fprintln(w, msg)
		writeCart(w, view.Cart)
	})
}

func parseItemID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, WrapExitError(ExitCommandError, "invalid item id", e.Wrap(raw, e.ErrInvalidItemID))
	}

	return id, nil
}
