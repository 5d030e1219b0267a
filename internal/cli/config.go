package cli

import (
	"fmt"
	"strings"

	"freeflow-cli/internal/store"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Local client settings",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the local config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	var apiURL, theme string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update local settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}

			changed := false
			if cmd.Flags().Changed("api-url") {
				cfg.APIURL = strings.TrimSpace(apiURL)
				changed = true
			}
			if cmd.Flags().Changed("theme") {
				switch theme {
				case "light", "dark", "auto", "":
				default:
					return writeErr(cmd, fmt.Errorf("theme must be light, dark or auto"))
				}
				if cfg.TUI == nil {
					cfg.TUI = &store.TUIConfig{}
				}
				cfg.TUI.Theme = theme
				changed = true
			}
			if !changed {
				return writeErr(cmd, fmt.Errorf("nothing to set; pass --api-url or --theme"))
			}

			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "Backend origin to persist")
	cmd.Flags().StringVar(&theme, "theme", "", "TUI theme (light|dark|auto)")
	return cmd
}
