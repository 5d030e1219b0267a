package cli

import (
	"freeflow-cli/internal/store"

	"github.com/spf13/cobra"
)

// history reads the local action index only; it never talks to the backend.
func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Recent actions taken from this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := store.ConfigDir()
			if err != nil {
				return writeErr(cmd, err)
			}
			s := store.Store{Dir: dir}
			actions, err := s.RecentActions(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": actions})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show")
	return cmd
}
