package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"freeflow-cli/internal/model"
)

func loadDetail(t *testing.T, m *appModel) {
	t.Helper()
	budget := 2500.0
	m.openProject("p1")
	m.Update(projectDetailLoadedMsg{
		seq:     m.seq,
		project: &model.Project{ID: "p1", ClientID: "c1", Title: "Website Redesign", Status: model.ProjectStatusIntake, Budget: &budget},
		client:  &model.Client{ID: "c1", Name: "Acme Corporation", Email: "jane@acmecorp.com"},
	})
}

func TestDetail_GenerateContractAdvancesBadge(t *testing.T) {
	t.Parallel()

	m := newTestApp(t)
	loadDetail(t, m)

	cmd := m.handleKey(keyRune('g'))
	if cmd == nil {
		t.Fatal("g should start contract generation")
	}
	if !m.detail.busy {
		t.Fatal("busy flag not set")
	}
	// The action key is a no-op while the call is in flight.
	if again := m.handleKey(keyRune('g')); again != nil {
		t.Fatal("second g must not issue another call")
	}

	m.Update(contractGeneratedMsg{seq: m.seq, contract: &model.Contract{
		ID: "ct1", ProjectID: "p1", Status: model.ContractStatusDraft,
		Variables: map[string]any{"client_name": "Acme Corporation", "budget": 2500.0},
	}})

	if m.detail.busy {
		t.Fatal("busy flag not cleared")
	}
	if m.detail.contract == nil || m.detail.contract.ID != "ct1" {
		t.Fatalf("contract not applied: %+v", m.detail.contract)
	}
	// The badge advances locally; the project is not re-fetched.
	if m.detail.project.Status != model.ProjectStatusContract {
		t.Fatalf("project status = %s; want Contract", m.detail.project.Status)
	}

	// A project with a contract can't generate another one.
	if cmd := m.handleKey(keyRune('g')); cmd != nil {
		t.Fatal("g with an existing contract must be a no-op")
	}
}

func TestDetail_CreateInvoice(t *testing.T) {
	t.Parallel()

	m := newTestApp(t)
	loadDetail(t, m)

	m.handleKey(keyRune('i'))
	if !m.detail.amountOpen {
		t.Fatal("i should open the amount input")
	}
	// Prefilled from the project budget.
	if got := m.detail.amount.Value(); got != "2500" {
		t.Fatalf("amount prefill = %q", got)
	}

	cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should create the invoice")
	}
	if !m.detail.busy || m.detail.amountOpen {
		t.Fatalf("state after submit: busy=%v amountOpen=%v", m.detail.busy, m.detail.amountOpen)
	}

	m.Update(invoiceCreatedMsg{seq: m.seq, invoice: &model.Invoice{
		ID: "inv1", ProjectID: "p1", Amount: 2500, Status: model.InvoiceStatusSent,
	}})
	if m.detail.invoice == nil || m.detail.invoice.ID != "inv1" {
		t.Fatalf("invoice not applied: %+v", m.detail.invoice)
	}
	if m.detail.project.Status != model.ProjectStatusBilling {
		t.Fatalf("project status = %s; want Billing", m.detail.project.Status)
	}
}

func TestDetail_InvalidAmountRejected(t *testing.T) {
	t.Parallel()

	m := newTestApp(t)
	loadDetail(t, m)

	m.handleKey(keyRune('i'))
	m.detail.amount.SetValue("not a number")
	if cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("invalid amount must not issue a call")
	}
	if !m.detail.amountOpen {
		t.Fatal("input should stay open for correction")
	}
	if m.detail.notice == "" {
		t.Fatal("validation message missing")
	}
}
