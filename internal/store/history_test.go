package store

import (
	"context"
	"testing"
	"time"
)

func TestHistory_AppendAndRecent(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, kind := range []string{"auth.login", "intake.create", "contract.generate"} {
		if _, err := s.AppendAction(ctx, Action{
			Kind:      kind,
			EntityID:  "e1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("AppendAction(%s): %v", kind, err)
		}
	}

	got, err := s.RecentActions(ctx, 2)
	if err != nil {
		t.Fatalf("RecentActions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RecentActions returned %d rows; want 2", len(got))
	}
	if got[0].Kind != "contract.generate" || got[1].Kind != "intake.create" {
		t.Fatalf("unexpected order: %s, %s", got[0].Kind, got[1].Kind)
	}
	if got[0].ID == "" {
		t.Fatal("id not generated")
	}

	last, err := s.LastAction(ctx)
	if err != nil {
		t.Fatalf("LastAction: %v", err)
	}
	if last == nil || last.Kind != "contract.generate" {
		t.Fatalf("LastAction = %#v; want contract.generate", last)
	}
}

func TestHistory_EmptyLog(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	got, err := s.RecentActions(ctx, 10)
	if err != nil {
		t.Fatalf("RecentActions: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history; got %d rows", len(got))
	}

	last, err := s.LastAction(ctx)
	if err != nil {
		t.Fatalf("LastAction: %v", err)
	}
	if last != nil {
		t.Fatalf("expected nil last action; got %#v", last)
	}
}
