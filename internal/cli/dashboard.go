package cli

import (
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Pipeline stats, work queue and agent activity",
	}
	cmd.AddCommand(newDashboardStatsCmd(app))
	cmd.AddCommand(newDashboardWorkQueueCmd(app))
	cmd.AddCommand(newDashboardActivityCmd(app))
	return cmd
}

func newDashboardStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Aggregate counts across projects, contracts and invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			stats, err := sc.Client.DashboardStats(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": stats})
		},
	}
}

func newDashboardWorkQueueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "work-queue",
		Short: "Items blocked on the freelancer",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			items, err := sc.Client.WorkQueue(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": items})
		},
	}
}

func newDashboardActivityCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Recent automated agent events",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			events, err := sc.Client.AgentActivity(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": events})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum events to return")
	return cmd
}
