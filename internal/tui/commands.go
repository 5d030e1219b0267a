package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"freeflow-cli/internal/api"
	"freeflow-cli/internal/model"
	"freeflow-cli/internal/store"
)

const requestTimeout = 30 * time.Second

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *appModel) loadDashboardCmd(seq int) tea.Cmd {
	c := m.opts.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		// The three dashboard fetches are independent; join them before
		// rendering anything.
		msg := dashboardLoadedMsg{seq: seq}
		var errStats, errQueue, errAct error
		var wg sync.WaitGroup
		wg.Add(3)
		go func() { defer wg.Done(); msg.stats, errStats = c.DashboardStats(ctx) }()
		go func() { defer wg.Done(); msg.queue, errQueue = c.WorkQueue(ctx) }()
		go func() { defer wg.Done(); msg.activity, errAct = c.AgentActivity(ctx, 10) }()
		wg.Wait()

		msg.err = firstErr(errStats, errQueue, errAct)
		return msg
	}
}

func (m *appModel) loadClientsCmd(seq int) tea.Cmd {
	c := m.opts.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg := clientsLoadedMsg{seq: seq}
		var errClients, errProjects error
		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); msg.clients, errClients = c.Clients(ctx) }()
		go func() { defer wg.Done(); msg.projects, errProjects = c.Projects(ctx) }()
		wg.Wait()

		msg.err = firstErr(errClients, errProjects)
		return msg
	}
}

func (m *appModel) loadProjectsCmd(seq int) tea.Cmd {
	c := m.opts.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg := projectsLoadedMsg{seq: seq}
		var errProjects, errClients error
		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); msg.projects, errProjects = c.Projects(ctx) }()
		go func() { defer wg.Done(); msg.clients, errClients = c.Clients(ctx) }()
		wg.Wait()

		msg.err = firstErr(errProjects, errClients)
		return msg
	}
}

func (m *appModel) loadProjectDetailCmd(seq int, projectID string) tea.Cmd {
	c := m.opts.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg := projectDetailLoadedMsg{seq: seq}
		project, err := c.ProjectByID(ctx, projectID)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.project = project

		var errClient, errContract error
		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); msg.client, errClient = c.ClientByID(ctx, project.ClientID) }()
		go func() { defer wg.Done(); msg.contract, errContract = c.ContractForProject(ctx, project.ID) }()
		wg.Wait()

		// No contract yet is the normal case for a project in Intake.
		if api.IsNotFound(errContract) {
			msg.contract = nil
			errContract = nil
		}
		msg.err = firstErr(errClient, errContract)
		return msg
	}
}

func (m *appModel) deleteProjectCmd(seq int, projectID string) tea.Cmd {
	c := m.opts.Client
	st := m.opts.Store
	log := m.opts.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := c.DeleteProject(ctx, projectID); err != nil {
			return projectDeletedMsg{seq: seq, projectID: projectID, err: err}
		}
		appendAction(ctx, st, log, "project.delete", projectID, "")
		return projectDeletedMsg{seq: seq, projectID: projectID}
	}
}

func (m *appModel) generateContractCmd(seq int, projectID string) tea.Cmd {
	c := m.opts.Client
	st := m.opts.Store
	log := m.opts.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		contract, err := c.GenerateContract(ctx, projectID, "standard")
		if err != nil {
			return contractGeneratedMsg{seq: seq, err: err}
		}
		appendAction(ctx, st, log, "contract.generate", contract.ID, projectID)
		return contractGeneratedMsg{seq: seq, contract: contract}
	}
}

func (m *appModel) sendContractCmd(seq int, contractID string) tea.Cmd {
	c := m.opts.Client
	st := m.opts.Store
	log := m.opts.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if _, err := c.SendContract(ctx, contractID); err != nil {
			return contractSentMsg{seq: seq, err: err}
		}
		appendAction(ctx, st, log, "contract.send", contractID, "")
		return contractSentMsg{seq: seq}
	}
}

func (m *appModel) createInvoiceCmd(seq int, projectID string, amount float64) tea.Cmd {
	c := m.opts.Client
	st := m.opts.Store
	log := m.opts.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		inv, err := c.CreateInvoice(ctx, projectID, amount, "deposit")
		if err != nil {
			return invoiceCreatedMsg{seq: seq, err: err}
		}
		appendAction(ctx, st, log, "invoice.create", inv.ID, projectID)
		return invoiceCreatedMsg{seq: seq, invoice: inv}
	}
}

func (m *appModel) extractCmd(seq int, rawText string) tea.Cmd {
	c := m.opts.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		draft, err := c.ParseEmail(ctx, rawText)
		return extractDoneMsg{seq: seq, draft: draft, err: err}
	}
}

func (m *appModel) submitDraftCmd(seq int, draft model.IntakeDraft) tea.Cmd {
	c := m.opts.Client
	st := m.opts.Store
	log := m.opts.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		res, err := c.CreateManualIntake(ctx, draft)
		if err != nil {
			return intakeCreatedMsg{seq: seq, err: err}
		}
		appendAction(ctx, st, log, "intake.create", res.ProjectID, draft.Project.Title)
		return intakeCreatedMsg{seq: seq, res: res}
	}
}

func (m *appModel) lastActionCmd() tea.Cmd {
	st := m.opts.Store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		a, err := st.LastAction(ctx)
		if err != nil {
			return lastActionMsg{}
		}
		return lastActionMsg{action: a}
	}
}

// appendAction records a completed mutation in the local history index.
// Best-effort: the remote call already succeeded, a broken index only logs.
func appendAction(ctx context.Context, st store.Store, log *zap.Logger, kind, entityID, detail string) {
	if _, err := st.AppendAction(ctx, store.Action{Kind: kind, EntityID: entityID, Detail: detail}); err != nil && log != nil {
		log.Warn("history append failed", zap.Error(err))
	}
}
