package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newInvoiceCmd(app *App) *cobra.Command {
	var open bool
	var out string

	cmd := &cobra.Command{
		Use:   "invoice <project>",
		Short: "Generate a printable invoice for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			if out != "" {
				app.InvoiceDir = out
			}
			app.OpenInvoices = open

			path, err := generateInvoice(ctx, app, p.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Invoice written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open the invoice in the browser (triggers print)")
	cmd.Flags().StringVar(&out, "out", "", "Directory to write the invoice into (default temp dir)")
	return cmd
}
