package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const tuiStateFileName = "tui_state.json"

// TUIState stores small, user-facing UI state for restoring the last screen
// on relaunch. Intentionally "best effort": callers tolerate missing or
// invalid data.
type TUIState struct {
	Version int `json:"version"`

	// View is one of: dashboard|clients|projects|project|inbox
	View string `json:"view,omitempty"`

	SelectedProjectID string `json:"selectedProjectId,omitempty"`

	// StatusFilter is the last projects-view status filter ("all" or a badge).
	StatusFilter string `json:"statusFilter,omitempty"`

	// RecentProjectIDs stores most-recently-opened project ids, newest first.
	RecentProjectIDs []string `json:"recentProjectIds,omitempty"`
}

func (s Store) tuiStatePath() string {
	return filepath.Join(s.Dir, tuiStateFileName)
}

func (s Store) LoadTUIState() (*TUIState, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return &TUIState{Version: 1}, nil
	}
	b, err := os.ReadFile(s.tuiStatePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &TUIState{Version: 1}, nil
		}
		return nil, err
	}
	var st TUIState
	if err := json.Unmarshal(b, &st); err != nil {
		// Best-effort; if corrupted, treat as missing.
		return &TUIState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

// AppendRecentProject pushes id to the front of the recent list, deduplicated
// and capped. Best-effort: load or save failures are swallowed.
func (s Store) AppendRecentProject(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	st, err := s.LoadTUIState()
	if err != nil || st == nil {
		return
	}
	recent := []string{id}
	for _, r := range st.RecentProjectIDs {
		if r != id {
			recent = append(recent, r)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	st.RecentProjectIDs = recent
	st.SelectedProjectID = id
	_ = s.SaveTUIState(st)
}

func (s Store) SaveTUIState(st *TUIState) error {
	if st == nil {
		return nil
	}
	if strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	path := s.tuiStatePath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
