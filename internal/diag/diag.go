package diag

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// NewLogger builds the diagnostics logger. The TUI owns the terminal, so
// diagnostics always go to a file under the config dir instead of stdout.
// Returns a no-op logger on any setup failure; diagnostics must never block
// normal usage.
func NewLogger(configDir string) *zap.Logger {
	if configDir == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(configDir, "freeflow.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	if os.Getenv("FREEFLOW_DEBUG") != "" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
