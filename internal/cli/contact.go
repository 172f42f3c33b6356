package cli

import (
	"fmt"
	"io"

	"github.com/DRSN-tech/foodie-cart/internal/app"
	"github.com/DRSN-tech/foodie-cart/internal/usecase"
	"github.com/spf13/cobra"
)

type ContactOptions struct {
	*RootOptions
	Name    string
	Email   string
	Message string
}

func NewContactCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ContactOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Leave a message for the restaurant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				msg, err := a.Contact.Submit(cmd.Context(), opts.Name, opts.Email, opts.Message)
				if err != nil {
					return err
				}

				record := usecase.ToContactMessageRecord(msg)
				return printer{opts.Format, cmd.OutOrStdout()}.print(record, func(w io.Writer) {
					fmt.Fprintln(w, "Thanks for reaching out!")
				})
			})
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "your name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "your email")
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "message text")

	return cmd
}
