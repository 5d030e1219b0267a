package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// Store is the machine-local state directory (config, TUI state, history).
type Store struct {
	Dir string
}

// Action is one locally recorded mutating operation (login, intake submit,
// contract generate, invoice create, project delete). The backend keeps the
// authoritative agent-event log; this index only powers `freeflow history`
// and the TUI's "last action" line without a network round trip.
type Action struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	EntityID  string    `json:"entityId,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s Store) historyPath() string {
	return filepath.Join(s.Dir, "history.sqlite")
}

func (s Store) openHistory(ctx context.Context) (*sql.DB, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.historyPath())
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage (CLI command while the TUI runs).
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=2000;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS actions (
			id         TEXT PRIMARY KEY,
			kind       TEXT NOT NULL,
			entity_id  TEXT NOT NULL DEFAULT '',
			detail     TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
	`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// AppendAction records one action. ID and CreatedAt are filled when empty.
func (s Store) AppendAction(ctx context.Context, a Action) (Action, error) {
	if strings.TrimSpace(a.ID) == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	db, err := s.openHistory(ctx)
	if err != nil {
		return Action{}, err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT INTO actions (id, kind, entity_id, detail, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Kind, a.EntityID, a.Detail, a.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Action{}, err
	}
	return a, nil
}

// RecentActions returns up to limit actions, newest first.
func (s Store) RecentActions(ctx context.Context, limit int) ([]Action, error) {
	if limit <= 0 {
		limit = 50
	}

	db, err := s.openHistory(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, kind, entity_id, detail, created_at FROM actions ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Action{}
	for rows.Next() {
		var a Action
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Kind, &a.EntityID, &a.Detail, &createdAt); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			a.CreatedAt = ts
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// LastAction returns the most recent action, or nil when the log is empty.
func (s Store) LastAction(ctx context.Context) (*Action, error) {
	actions, err := s.RecentActions(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return nil, nil
	}
	return &actions[0], nil
}
