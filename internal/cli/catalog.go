package cli

import (
	"io"

	"github.com/DRSN-tech/foodie-cart/internal/app"
	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/spf13/cobra"
)

type CatalogOptions struct {
	*RootOptions
	Category string
	Featured bool
}

func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category := domain.Category(opts.Category)
			if category != domain.CategoryAll && !category.Valid() {
				return WrapExitError(ExitCommandError, "invalid --category", e.Wrap(opts.Category, e.ErrInvalidCategory))
			}

			return opts.withApp(cmd, func(a *app.App) error {
				items := a.Catalog.ByCategory(category)
				if opts.Featured {
					items = a.Catalog.Featured()
				}

				view := toCatalogView(items)
				return printer{opts.Format, cmd.OutOrStdout()}.print(view, func(w io.Writer) {
					writeCatalog(w, view)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", string(domain.CategoryAll), "filter: all|pizza|burger|sandwich")
	cmd.Flags().BoolVar(&opts.Featured, "featured", false, "show only the featured items")
	return cmd
}
