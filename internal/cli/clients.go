package cli

import (
	"freeflow-cli/internal/model"

	"github.com/spf13/cobra"
)

func newClientsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Client roster",
	}
	cmd.AddCommand(newClientsListCmd(app))
	cmd.AddCommand(newClientsShowCmd(app))
	return cmd
}

func newClientsListCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients, with project counts and lifetime budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			ctx := cmd.Context()
			clients, err := sc.Client.Clients(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			projects, err := sc.Client.Projects(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}

			clients = model.FilterClients(clients, search)

			// Mirror the roster cards: each client with its derived figures.
			type row struct {
				model.Client
				ActiveProjects int     `json:"active_projects"`
				TotalBudget    float64 `json:"total_budget"`
			}
			rows := make([]row, 0, len(clients))
			for _, c := range clients {
				rows = append(rows, row{
					Client:         c,
					ActiveProjects: model.ActiveProjectCount(projects, c.ID),
					TotalBudget:    model.TotalBudget(projects, c.ID),
				})
			}
			return writeOut(cmd, app, map[string]any{"data": rows})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on name, email or company")
	return cmd
}

func newClientsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <client-id>",
		Short: "Show one client and its projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			ctx := cmd.Context()
			client, err := sc.Client.ClientByID(ctx, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			projects, err := sc.Client.Projects(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}

			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"client":   client,
				"projects": model.ClientProjects(projects, client.ID),
			}})
		},
	}
}
