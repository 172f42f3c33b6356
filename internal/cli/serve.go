package cli

import (
	"github.com/DRSN-tech/foodie-cart/internal/app"
	"github.com/spf13/cobra"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API on HTTP_PORT until SIGINT or SIGTERM.

The store backend is selected with STORE_DRIVER (memory|sqlite|redis|postgres).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				return a.Serve(cmd.Context())
			})
		},
	}
}
