package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"freeflow-cli/internal/model"
	"freeflow-cli/internal/store"
)

// TTL is how long a persisted session stays valid after login.
const TTL = 24 * time.Hour

const (
	profileFileName = "profile.json"
	sessionFileName = "session.json"
)

// Store persists the logged-in identity across invocations. It keeps the
// original two-file split: profile.json carries display identity,
// session.json carries the login timestamp that drives expiry.
//
// Purely local-storage semantics: no network calls, synchronous read/write,
// and anything malformed is treated as logged-out rather than an error.
type Store struct {
	Dir string

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

// DefaultStore resolves the store under the global config dir.
func DefaultStore() (Store, error) {
	dir, err := store.ConfigDir()
	if err != nil {
		return Store{}, err
	}
	return Store{Dir: dir}, nil
}

type profilePayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type sessionPayload struct {
	UserID string `json:"userId"`
	// Timestamp is Unix milliseconds, matching what the web client wrote.
	Timestamp int64 `json:"timestamp"`
}

func (s Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s Store) profilePath() string { return filepath.Join(s.Dir, profileFileName) }
func (s Store) sessionPath() string { return filepath.Join(s.Dir, sessionFileName) }

// Load reconstructs the session, applying the expiry rule. Missing, malformed,
// inconsistent or expired data yields (nil, nil) and clears storage.
func (s Store) Load() (*model.Session, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return nil, nil
	}

	pb, err := os.ReadFile(s.profilePath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		_ = s.Clear()
		return nil, nil
	}
	sb, err := os.ReadFile(s.sessionPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		_ = s.Clear()
		return nil, nil
	}

	var prof profilePayload
	var sess sessionPayload
	if json.Unmarshal(pb, &prof) != nil || json.Unmarshal(sb, &sess) != nil {
		_ = s.Clear()
		return nil, nil
	}
	if prof.ID == "" || sess.UserID == "" || prof.ID != sess.UserID {
		_ = s.Clear()
		return nil, nil
	}

	loginAt := time.UnixMilli(sess.Timestamp)
	if s.now().Sub(loginAt) > TTL {
		_ = s.Clear()
		return nil, nil
	}

	return &model.Session{
		UserID:  prof.ID,
		Name:    prof.Name,
		Email:   prof.Email,
		LoginAt: loginAt,
	}, nil
}

// Save persists identity and the login timestamp.
func (s Store) Save(sess model.Session) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}

	loginAt := sess.LoginAt
	if loginAt.IsZero() {
		loginAt = s.now()
	}

	pb, err := json.MarshalIndent(profilePayload{
		ID:    sess.UserID,
		Name:  sess.Name,
		Email: sess.Email,
	}, "", "  ")
	if err != nil {
		return err
	}
	sb, err := json.MarshalIndent(sessionPayload{
		UserID:    sess.UserID,
		Timestamp: loginAt.UnixMilli(),
	}, "", "  ")
	if err != nil {
		return err
	}

	if err := writeFileAtomic(s.profilePath(), pb); err != nil {
		return err
	}
	return writeFileAtomic(s.sessionPath(), sb)
}

// Clear removes all persisted session data.
func (s Store) Clear() error {
	var firstErr error
	for _, p := range []string{s.profilePath(), s.sessionPath()} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func writeFileAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
