package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"freeflow-cli/internal/model"
)

func TestLoad_AfterSave_RoundTrip(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}

	want := model.Session{
		UserID: "user-1",
		Name:   "Jane Doe",
		Email:  "jane@acmecorp.com",
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil for a fresh session")
	}
	if got.UserID != want.UserID || got.Name != want.Name || got.Email != want.Email {
		t.Fatalf("roundtrip mismatch: got %#v want %#v", got, want)
	}
	if got.LoginAt.IsZero() {
		t.Fatal("LoginAt not populated on Save")
	}
}

func TestLoad_Expired_ClearsStorage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := Store{Dir: dir}

	if err := s.Save(model.Session{UserID: "user-1", Name: "Jane"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Move the clock past the 24h window.
	s.Now = func() time.Time { return time.Now().Add(TTL + time.Minute) }

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil session after expiry; got %#v", got)
	}

	for _, name := range []string{profileFileName, sessionFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Fatalf("expected %s removed after expiry; stat err = %v", name, err)
		}
	}
}

func TestLoad_JustInsideWindow_StillValid(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	if err := s.Save(model.Session{UserID: "user-1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s.Now = func() time.Time { return time.Now().Add(TTL - time.Minute) }

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || got.UserID != "user-1" {
		t.Fatalf("expected session still valid inside window; got %#v", got)
	}
}

func TestLoad_MalformedData_FailsOpenToLoggedOut(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := Store{Dir: dir}

	if err := os.WriteFile(filepath.Join(dir, profileFileName), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, sessionFileName), []byte(`{"userId":"u1","timestamp":1}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Fatalf("expected logged-out on malformed profile; got %#v", got)
	}
	if _, err := os.Stat(filepath.Join(dir, sessionFileName)); !os.IsNotExist(err) {
		t.Fatal("expected malformed session data to be cleared")
	}
}

func TestLoad_UserIDMismatch_TreatedAsAbsent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := Store{Dir: dir}

	if err := os.WriteFile(filepath.Join(dir, profileFileName), []byte(`{"id":"u1","name":"Jane","email":"j@x.com"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, sessionFileName), []byte(`{"userId":"other","timestamp":99999999999999}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil session on id mismatch; got %#v", got)
	}
}

func TestClear_RemovesEverything(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := Store{Dir: dir}

	if err := s.Save(model.Session{UserID: "user-1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil session after Clear; got %#v", got)
	}

	// Clearing an already-empty store is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
