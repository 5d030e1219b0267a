package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newInvoicesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Invoice creation and payment tracking",
	}
	cmd.AddCommand(newInvoicesCreateCmd(app))
	cmd.AddCommand(newInvoicesShowCmd(app))
	cmd.AddCommand(newInvoicesRemindCmd(app))
	cmd.AddCommand(newInvoicesPDFCmd(app))
	return cmd
}

func newInvoicesCreateCmd(app *App) *cobra.Command {
	var (
		projectID string
		amount    float64
		mode      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			inv, err := sc.Client.CreateInvoice(cmd.Context(), projectID, amount, mode)
			if err != nil {
				return writeErr(cmd, err)
			}

			recordAction(cmd.Context(), "invoice.create", inv.ID, projectID)
			return writeOut(cmd, app, map[string]any{"data": inv})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Invoice amount")
	cmd.Flags().StringVar(&mode, "mode", "deposit", "Billing mode (deposit|full)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newInvoicesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <invoice-id>",
		Short: "Show an invoice with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			inv, err := sc.Client.InvoiceByID(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": inv})
		},
	}
}

func newInvoicesRemindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remind <invoice-id>",
		Short: "Send a payment reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := sc.Client.RemindInvoice(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			recordAction(cmd.Context(), "invoice.remind", args[0], "")
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}
}

func newInvoicesPDFCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pdf <invoice-id>",
		Short: "Download the invoice PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			f, err := os.Create(out)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer f.Close()

			if err := sc.Client.DownloadInvoicePDF(cmd.Context(), args[0], f); err != nil {
				os.Remove(out)
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"written": out}})
		},
	}

	cmd.Flags().StringVar(&out, "out", "invoice.pdf", "Output file path")
	return cmd
}
