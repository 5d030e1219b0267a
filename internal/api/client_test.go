package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freeflow-cli/internal/model"
)

func TestClient_AttachesIdentityHeaders(t *testing.T) {
	t.Parallel()

	var gotUser, gotTrace string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.Header.Get("X-User-ID")
		gotTrace = r.Header.Get("X-Trace-ID")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithUserID("user-1"))
	if _, err := c.Clients(context.Background()); err != nil {
		t.Fatalf("Clients: %v", err)
	}
	if gotUser != "user-1" {
		t.Fatalf("X-User-ID = %q; want user-1", gotUser)
	}
	if gotTrace == "" {
		t.Fatal("X-Trace-ID missing")
	}
}

func TestClient_AnonymousOmitsUserHeader(t *testing.T) {
	t.Parallel()

	var hadHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["X-User-Id"]
		_, _ = w.Write([]byte(`{"message":"ok","user_id":"u1"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if hadHeader {
		t.Fatal("X-User-ID sent on anonymous request")
	}
}

func TestClient_Non2xxCarriesBackendDetail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	ae, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error; got %T: %v", err, err)
	}
	if ae.Status != http.StatusUnauthorized || ae.Detail != "Invalid credentials" {
		t.Fatalf("unexpected error: %#v", ae)
	}
}

func TestClient_Non2xxWithoutDetailFallsBackToStatusText(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Projects(context.Background())
	ae, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error; got %T: %v", err, err)
	}
	if ae.Detail != "Bad Gateway" {
		t.Fatalf("Detail = %q; want status text fallback", ae.Detail)
	}
}

func TestContractForProject_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Contract not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ContractForProject(context.Background(), "p1")
	if !IsNotFound(err) {
		t.Fatalf("expected IsNotFound; got %v", err)
	}
}

func TestCreateManualIntake_ForwardsDraftVerbatim(t *testing.T) {
	t.Parallel()

	var got model.IntakeDraft
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/intake/create-manual" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"message":"ok","project_id":"p1","client_id":"c1"}`))
	}))
	defer srv.Close()

	budget := 2500.0
	draft := model.IntakeDraft{
		Client:     model.IntakeClient{Name: "Jane Doe", Email: "jane@acmecorp.com", Company: "Acme Corporation"},
		Project:    model.IntakeProject{Title: "Website redesign", Description: "Landing page", Budget: &budget, Timeline: "30 days"},
		Confidence: model.Confidence{Budget: 0.8, Timeline: 0.7},
		Status:     model.IntakeComplete,
	}

	c := New(srv.URL, WithUserID("user-1"))
	res, err := c.CreateManualIntake(context.Background(), draft)
	if err != nil {
		t.Fatalf("CreateManualIntake: %v", err)
	}
	if res.ProjectID != "p1" {
		t.Fatalf("ProjectID = %q; want p1", res.ProjectID)
	}

	if got.Client != draft.Client {
		t.Fatalf("client mutated in transit: got %#v want %#v", got.Client, draft.Client)
	}
	if got.Project.Title != draft.Project.Title || got.Project.Description != draft.Project.Description ||
		got.Project.Timeline != draft.Project.Timeline {
		t.Fatalf("project mutated in transit: got %#v want %#v", got.Project, draft.Project)
	}
	if got.Project.Budget == nil || *got.Project.Budget != budget {
		t.Fatalf("budget mutated in transit: got %v", got.Project.Budget)
	}
	if got.Status != draft.Status || got.Confidence != draft.Confidence {
		t.Fatalf("status/confidence mutated in transit: got %#v", got)
	}
}

func TestParseEmail_DecodesDraft(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["raw_text"] == "" {
			t.Error("raw_text missing from request body")
		}
		_, _ = w.Write([]byte(`{
			"client": {"name":"Jane Doe","email":"jane@acmecorp.com","company":"Acme Corporation"},
			"project": {"title":"Website redesign","description":"Landing page","budget":2500,"timeline":"30 days"},
			"confidence": {"budget":0.8,"timeline":0.7},
			"status": "intake_complete"
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	draft, err := c.ParseEmail(context.Background(), "Hi there! ...")
	if err != nil {
		t.Fatalf("ParseEmail: %v", err)
	}
	if draft.Status != model.IntakeComplete {
		t.Fatalf("Status = %q; want intake_complete", draft.Status)
	}
	if draft.Confidence.Budget != 0.8 {
		t.Fatalf("Confidence.Budget = %v; want 0.8", draft.Confidence.Budget)
	}
	if draft.Project.Budget == nil || *draft.Project.Budget != 2500 {
		t.Fatalf("Project.Budget = %v; want 2500", draft.Project.Budget)
	}
}

func TestDeleteProject_UsesDeleteMethod(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, WithUserID("user-1"))
	if err := c.DeleteProject(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/projects/p1" {
		t.Fatalf("got %s %s; want DELETE /api/projects/p1", gotMethod, gotPath)
	}
}
