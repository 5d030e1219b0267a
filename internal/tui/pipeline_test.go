package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"freeflow-cli/internal/model"
)

func loadPipeline(t *testing.T, m *appModel) {
	t.Helper()
	m.enterView(viewProjects)

	b1, b2 := 2500.0, 900.0
	m.Update(projectsLoadedMsg{
		seq: m.seq,
		projects: []model.Project{
			{ID: "p1", ClientID: "c1", Title: "Website Redesign", Status: model.ProjectStatusIntake, Budget: &b1},
			{ID: "p2", ClientID: "c1", Title: "Logo Refresh", Status: model.ProjectStatusContract, Budget: &b2},
			{ID: "p3", ClientID: "c2", Title: "SEO Audit", Status: model.ProjectStatusDone},
		},
		clients: []model.Client{
			{ID: "c1", Name: "Acme Corporation", Email: "jane@acmecorp.com"},
			{ID: "c2", Name: "Globex", Email: "hank@globex.test"},
		},
	})
}

func TestPipeline_FilterPerKeystroke(t *testing.T) {
	t.Parallel()

	m := newTestApp(t)
	loadPipeline(t, m)
	if got := len(m.pipeline.list.Items()); got != 3 {
		t.Fatalf("initial rows = %d; want 3", got)
	}

	m.handleKey(keyRune('/'))
	for _, r := range "logo" {
		m.handleKey(keyRune(r))
	}
	if got := len(m.pipeline.list.Items()); got != 1 {
		t.Fatalf("rows after filter = %d; want 1", got)
	}
	it := m.pipeline.list.Items()[0].(projectItem)
	if it.project.ID != "p2" {
		t.Fatalf("filtered to %s; want p2", it.project.ID)
	}

	// Matching the client name keeps the client's projects visible.
	m.pipeline.search.SetValue("acme")
	m.refreshPipelineItems()
	if got := len(m.pipeline.list.Items()); got != 2 {
		t.Fatalf("rows for client-name match = %d; want 2", got)
	}
}

func TestPipeline_StatusFilterCycle(t *testing.T) {
	t.Parallel()

	m := newTestApp(t)
	loadPipeline(t, m)

	m.handleKey(keyRune('s')) // all -> Intake
	if got := len(m.pipeline.list.Items()); got != 1 {
		t.Fatalf("Intake rows = %d; want 1", got)
	}
	m.handleKey(keyRune('s')) // -> Contract
	if got := len(m.pipeline.list.Items()); got != 1 {
		t.Fatalf("Contract rows = %d; want 1", got)
	}
	it := m.pipeline.list.Items()[0].(projectItem)
	if it.project.Status != model.ProjectStatusContract {
		t.Fatalf("wrong status shown: %s", it.project.Status)
	}
}

func TestPipeline_DeleteRemovesRow(t *testing.T) {
	t.Parallel()

	m := newTestApp(t)
	loadPipeline(t, m)

	m.handleKey(keyRune('x'))
	if m.pipeline.confirm == nil {
		t.Fatal("x should open the delete confirmation")
	}
	if m.pipeline.confirm.projectID != "p1" {
		t.Fatalf("confirm targets %s; want selected p1", m.pipeline.confirm.projectID)
	}

	// Cancel is the default focus; confirming requires moving focus first.
	if cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("enter on Cancel must not delete")
	}
	if m.pipeline.confirm != nil {
		t.Fatal("cancel should close the modal")
	}

	m.handleKey(keyRune('x'))
	m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("confirmed delete should issue a command")
	}
	if !m.pipeline.deleting {
		t.Fatal("deleting flag not set")
	}

	m.Update(projectDeletedMsg{seq: m.seq, projectID: "p1"})
	if m.pipeline.confirm != nil || m.pipeline.deleting {
		t.Fatal("modal should close after deletion")
	}
	if got := len(m.pipeline.list.Items()); got != 2 {
		t.Fatalf("rows after delete = %d; want 2", got)
	}
	for _, it := range m.pipeline.list.Items() {
		if it.(projectItem).project.ID == "p1" {
			t.Fatal("deleted project still listed")
		}
	}
}

func TestPipeline_StaleLoadDropped(t *testing.T) {
	t.Parallel()

	m := newTestApp(t)
	m.enterView(viewProjects)
	stale := m.seq

	// Navigating away before the response lands must drop it.
	m.enterView(viewDashboard)
	m.Update(projectsLoadedMsg{seq: stale, projects: []model.Project{{ID: "p1"}}})

	if len(m.pipeline.projects) != 0 {
		t.Fatal("stale projects response was applied")
	}
	if !m.pipeline.loading {
		t.Fatal("stale response cleared the loading flag")
	}
}

func TestPipeline_EnterOpensDetail(t *testing.T) {
	t.Parallel()

	m := newTestApp(t)
	loadPipeline(t, m)

	cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should start the detail fetch")
	}
	if m.active != viewProjectDetail {
		t.Fatalf("active view = %s; want project", m.active)
	}
	if m.detail.projectID != "p1" {
		t.Fatalf("detail project = %s; want p1", m.detail.projectID)
	}
}
