package tui

import (
	"freeflow-cli/internal/api"
	"freeflow-cli/internal/model"
	"freeflow-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options carries everything the TUI needs; the session is read once at
// startup and never re-checked while the program runs.
type Options struct {
	Client  *api.Client
	Session *model.Session
	Store   store.Store
	Logger  *zap.Logger

	// Theme is the configured preference ("light", "dark", "auto" or empty);
	// the FREEFLOW_TUI_THEME env var still wins.
	Theme string
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
