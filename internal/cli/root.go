package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"freeflow-cli/internal/api"
	"freeflow-cli/internal/diag"
	"freeflow-cli/internal/format"
	"freeflow-cli/internal/model"
	"freeflow-cli/internal/session"
	"freeflow-cli/internal/store"
	"freeflow-cli/internal/tui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultAPIURL = "http://localhost:8000"

type App struct {
	APIURL     string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	// Same convention as the web client: the backend origin may live in a
	// project-local .env file.
	_ = godotenv.Load()

	cmd := &cobra.Command{
		Use:          "freeflow",
		Short:        "FreeFlow dashboard CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard TUI
  freeflow

  # Scriptable commands
  freeflow projects list
  freeflow intake parse --file inquiry.txt

  # Direct project lookup (shortcut for: freeflow projects show <project-id>)
  freeflow 7b1e3c92-5b1f-4c21-9f6e-2f4c0db1a001
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.APIURL, "api-url", envOr("FREEFLOW_API_URL", ""), "Backend origin (default: config.json apiUrl, then "+defaultAPIURL+")")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("FREEFLOW_FORMAT", "json"), "Output format (json)")

	cmd.AddCommand(newAuthCmd(app))
	cmd.AddCommand(newClientsCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newIntakeCmd(app))
	cmd.AddCommand(newContractsCmd(app))
	cmd.AddCommand(newInvoicesCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(app *App) error {
	sess, _, err := loadSession()
	if err != nil {
		return err
	}
	if sess == nil {
		return errLoggedOut
	}

	dir, err := store.ConfigDir()
	if err != nil {
		return err
	}

	client, err := apiClient(app, sess)
	if err != nil {
		return err
	}

	theme := ""
	if cfg, err := store.LoadConfig(); err == nil && cfg.TUI != nil {
		theme = cfg.TUI.Theme
	}

	return tui.Run(tui.Options{
		Client:  client,
		Session: sess,
		Store:   store.Store{Dir: dir},
		Logger:  diag.NewLogger(dir),
		Theme:   theme,
	})
}

func loadSession() (*model.Session, session.Store, error) {
	s, err := session.DefaultStore()
	if err != nil {
		return nil, session.Store{}, err
	}
	sess, err := s.Load()
	if err != nil {
		return nil, s, err
	}
	return sess, s, nil
}

// apiClient builds the API client, attaching the session identity when one
// exists. sess may be nil for anonymous endpoints (login/register).
func apiClient(app *App, sess *model.Session) (*api.Client, error) {
	base, err := resolveAPIURL(app)
	if err != nil {
		return nil, err
	}

	dir, _ := store.ConfigDir()
	opts := []api.Option{api.WithLogger(diag.NewLogger(dir))}
	if sess != nil {
		opts = append(opts, api.WithUserID(sess.UserID))
	}
	return api.New(base, opts...), nil
}

func resolveAPIURL(app *App) (string, error) {
	if v := strings.TrimSpace(app.APIURL); v != "" {
		return v, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return "", err
	}
	if v := strings.TrimSpace(cfg.APIURL); v != "" {
		return v, nil
	}
	return defaultAPIURL, nil
}

// recordAction appends to the local history index. Best-effort: a broken
// local index must not fail the command that already succeeded remotely.
func recordAction(ctx context.Context, kind, entityID, detail string) {
	dir, err := store.ConfigDir()
	if err != nil {
		return
	}
	s := store.Store{Dir: dir}
	if _, err := s.AppendAction(ctx, store.Action{Kind: kind, EntityID: entityID, Detail: detail}); err != nil {
		diag.NewLogger(dir).Warn("history append failed", zap.Error(err))
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
