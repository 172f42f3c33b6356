package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/DRSN-tech/foodie-cart/internal/app"
	config "github.com/DRSN-tech/foodie-cart/internal/cfg"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
	"github.com/spf13/cobra"
)

// Opener собирает приложение для одной команды. Вызывающий закрывает его через App.Close.
type Opener func(ctx context.Context) (*app.App, error)

// EnvOpener читает конфигурацию из окружения и пишет логи в stdout.
func EnvOpener(ctx context.Context) (*app.App, error) {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	return app.NewApp(ctx, cfg, log)
}

// RootOptions хранит общие флаги всех команд.
type RootOptions struct {
	Format string // "text" | "json"
	open   Opener
}

var ValidFormats = []string{"text", "json"}

func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "foodie",
		Short: "Foodie Delight - food ordering cart",
		Long:  "Browse the menu, manage the cart, preview the bill and confirm orders.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewBillCommand(opts))
	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewContactCommand(opts))

	return cmd
}

// withApp открывает приложение на время выполнения fn.
func (o *RootOptions) withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := o.open(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to start", err)
	}

	runErr := fn(a)
	closeErr := a.Close(context.WithoutCancel(ctx))
	if runErr != nil {
		return runErr
	}

	return closeErr
}
