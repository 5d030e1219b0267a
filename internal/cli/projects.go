package cli

import (
	"fmt"

	"freeflow-cli/internal/api"
	"freeflow-cli/internal/model"

	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project pipeline",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	cmd.AddCommand(newProjectsDeleteCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var search, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, filterable by text and lifecycle status",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			ctx := cmd.Context()
			projects, err := sc.Client.Projects(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			clients, err := sc.Client.Clients(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}

			byID := model.ClientsByID(clients)
			projects = model.FilterProjects(projects, byID, search, status)

			type row struct {
				model.Project
				ClientName string `json:"client_name,omitempty"`
			}
			rows := make([]row, 0, len(projects))
			for _, p := range projects {
				r := row{Project: p}
				if c, ok := byID[p.ClientID]; ok {
					r.ClientName = c.Name
				}
				rows = append(rows, r)
			}
			return writeOut(cmd, app, map[string]any{"data": rows})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on title, description or client name")
	cmd.Flags().StringVar(&status, "status", "all", "Lifecycle filter (Intake|Contract|Billing|Done|all)")
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project with its client and contract state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			ctx := cmd.Context()
			project, err := sc.Client.ProjectByID(ctx, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			out := map[string]any{"project": project}
			if client, err := sc.Client.ClientByID(ctx, project.ClientID); err == nil {
				out["client"] = client
			}

			// A project in Intake has no contract yet; a 404 here is normal.
			contract, err := sc.Client.ContractForProject(ctx, project.ID)
			switch {
			case err == nil:
				out["contract"] = contract
			case !api.IsNotFound(err):
				return writeErr(cmd, err)
			}

			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, fmt.Errorf("refusing to delete %s without --yes", args[0]))
			}

			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sc.Client.DeleteProject(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}

			recordAction(cmd.Context(), "project.delete", args[0], "")
			return writeOut(cmd, app, map[string]any{"data": map[string]string{
				"status":     "deleted",
				"project_id": args[0],
			}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation check")
	return cmd
}
