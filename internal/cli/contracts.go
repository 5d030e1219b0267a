package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newContractsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Contract generation and signature tracking",
	}
	cmd.AddCommand(newContractsGenerateCmd(app))
	cmd.AddCommand(newContractsStatusCmd(app))
	cmd.AddCommand(newContractsSendCmd(app))
	cmd.AddCommand(newContractsPDFCmd(app))
	return cmd
}

func newContractsGenerateCmd(app *App) *cobra.Command {
	var projectID, templateID string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a draft contract for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			contract, err := sc.Client.GenerateContract(cmd.Context(), projectID, templateID)
			if err != nil {
				return writeErr(cmd, err)
			}

			recordAction(cmd.Context(), "contract.generate", contract.ID, projectID)
			return writeOut(cmd, app, map[string]any{"data": contract})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().StringVar(&templateID, "template", "standard", "Contract template id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newContractsStatusCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the contract for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			contract, err := sc.Client.ContractForProject(cmd.Context(), projectID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": contract})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newContractsSendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "send <contract-id>",
		Short: "Send a contract out for signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := sc.Client.SendContract(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			recordAction(cmd.Context(), "contract.send", args[0], "")
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}
}

func newContractsPDFCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pdf <contract-id>",
		Short: "Download the contract PDF",
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

			if err := sc.Client.DownloadContractPDF(cmd.Context(), args[0], f); err != nil {
				os.Remove(out)
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"written": out}})
		},
	}

	cmd.Flags().StringVar(&out, "out", "contract.pdf", "Output file path")
	return cmd
}
