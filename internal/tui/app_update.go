package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"freeflow-cli/internal/model"
)

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case dashboardLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.dash.loading = false
		if msg.err != nil {
			m.dash.err = msg.err.Error()
			return m, nil
		}
		m.dash.err = ""
		m.dash.stats = msg.stats
		m.dash.queue = msg.queue
		m.dash.activity = msg.activity
		return m, nil

	case clientsLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.roster.loading = false
		if msg.err != nil {
			m.roster.err = msg.err.Error()
			return m, nil
		}
		m.roster.err = ""
		m.roster.clients = msg.clients
		m.roster.projects = msg.projects
		m.refreshRosterItems()
		return m, nil

	case projectsLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.pipeline.loading = false
		if msg.err != nil {
			m.pipeline.err = msg.err.Error()
			return m, nil
		}
		m.pipeline.err = ""
		m.pipeline.projects = msg.projects
		m.pipeline.clients = msg.clients
		m.refreshPipelineItems()
		return m, nil

	case projectDetailLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.detail.loading = false
		if msg.err != nil {
			m.detail.err = msg.err.Error()
			return m, nil
		}
		m.detail.err = ""
		m.detail.project = msg.project
		m.detail.client = msg.client
		m.detail.contract = msg.contract
		return m, nil

	case projectDeletedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.pipeline.deleting = false
		m.pipeline.confirm = nil
		if msg.err != nil {
			m.pipeline.err = msg.err.Error()
			return m, nil
		}
		m.removeProject(msg.projectID)
		return m, m.lastActionCmd()

	case contractGeneratedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.detail.busy = false
		if msg.err != nil {
			m.detail.notice = msg.err.Error()
			return m, nil
		}
		// The response replaces local contract state and advances the badge;
		// no re-fetch of the project.
		m.detail.contract = msg.contract
		m.detail.notice = "contract generated"
		if m.detail.project != nil {
			m.detail.project.Status = model.ProjectStatusContract
		}
		return m, m.lastActionCmd()

	case contractSentMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.detail.busy = false
		if msg.err != nil {
			m.detail.notice = msg.err.Error()
			return m, nil
		}
		m.detail.notice = "contract sent for signature"
		if m.detail.contract != nil {
			m.detail.contract.Status = model.ContractStatusSent
		}
		return m, m.lastActionCmd()

	case invoiceCreatedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.detail.busy = false
		if msg.err != nil {
			m.detail.notice = msg.err.Error()
			return m, nil
		}
		m.detail.invoice = msg.invoice
		m.detail.notice = "invoice created"
		if m.detail.project != nil {
			m.detail.project.Status = model.ProjectStatusBilling
		}
		return m, m.lastActionCmd()

	case extractDoneMsg, intakeCreatedMsg:
		// Inbox results apply regardless of the active view; the workflow
		// keeps its state while the user looks elsewhere.
		return m, m.updateInbox(msg)

	case lastActionMsg:
		m.lastAction = msg.action
		return m, nil
	}

	return m, nil
}

func (m *appModel) resize(w, h int) {
	m.width, m.height = w, h

	contentW := w - sidebarWidth - 4
	if contentW < 20 {
		contentW = 20
	}
	listH := h - 6
	if listH < 3 {
		listH = 3
	}
	m.roster.list.SetSize(contentW, listH)
	m.pipeline.list.SetSize(contentW, listH)
	m.inbox.input.SetWidth(contentW)
	for i := range m.inbox.fields {
		m.inbox.fields[i].Width = contentW - 20
	}
}

// typing reports whether a text input currently owns the keyboard, in which
// case global single-letter shortcuts must not fire.
func (m *appModel) typing() bool {
	switch m.active {
	case viewClients:
		return m.roster.search.Focused()
	case viewProjects:
		return m.pipeline.search.Focused()
	case viewProjectDetail:
		return m.detail.amountOpen
	case viewInbox:
		return (m.inbox.state == draftEmpty && m.inbox.input.Focused()) || m.inbox.state == draftReviewable
	}
	return false
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	// ctrl+c always quits, whatever has focus.
	if msg.String() == "ctrl+c" {
		m.persistState()
		return tea.Quit
	}

	if !m.typing() {
		switch msg.String() {
		case "q":
			m.persistState()
			return tea.Quit
		case "1":
			return m.enterView(viewDashboard)
		case "2":
			return m.enterView(viewClients)
		case "3":
			return m.enterView(viewProjects)
		case "4":
			return m.enterView(viewInbox)
		case "r":
			// The inbox owns r (retry); everywhere else it refreshes.
			if m.active != viewInbox {
				if m.active == viewProjectDetail {
					return m.openProject(m.detail.projectID)
				}
				return m.enterView(m.active)
			}
		}
	}

	switch m.active {
	case viewClients:
		return m.updateRoster(msg)
	case viewProjects:
		return m.updatePipeline(msg)
	case viewProjectDetail:
		return m.updateDetail(msg)
	case viewInbox:
		return m.updateInbox(msg)
	}
	return nil
}

func (m *appModel) updateRoster(msg tea.KeyMsg) tea.Cmd {
	if m.roster.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.roster.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.roster.search, cmd = m.roster.search.Update(msg)
		m.refreshRosterItems()
		return cmd
	}

	switch msg.String() {
	case "/":
		return m.roster.search.Focus()
	}
	var cmd tea.Cmd
	m.roster.list, cmd = m.roster.list.Update(msg)
	return cmd
}

func (m *appModel) updatePipeline(msg tea.KeyMsg) tea.Cmd {
	p := &m.pipeline

	if p.confirm != nil {
		return m.updateDeleteConfirm(msg)
	}

	if p.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			p.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		m.refreshPipelineItems()
		return cmd
	}

	switch msg.String() {
	case "/":
		return p.search.Focus()
	case "s":
		p.statusIdx = (p.statusIdx + 1) % len(statusFilters)
		m.refreshPipelineItems()
		return nil
	case "enter":
		if it, ok := p.list.SelectedItem().(projectItem); ok {
			return m.openProject(it.project.ID)
		}
		return nil
	case "x":
		if it, ok := p.list.SelectedItem().(projectItem); ok {
			p.confirm = &deleteConfirm{
				projectID: it.project.ID,
				title:     it.project.Title,
				focus:     confirmFocusCancel,
			}
		}
		return nil
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return cmd
}

func (m *appModel) updateDeleteConfirm(msg tea.KeyMsg) tea.Cmd {
	p := &m.pipeline
	if p.deleting {
		return nil
	}

	switch msg.String() {
	case "esc", "ctrl+g":
		p.confirm = nil
		return nil
	case "tab", "left", "right":
		if p.confirm.focus == confirmFocusConfirm {
			p.confirm.focus = confirmFocusCancel
		} else {
			p.confirm.focus = confirmFocusConfirm
		}
		return nil
	case "enter":
		if p.confirm.focus != confirmFocusConfirm {
			p.confirm = nil
			return nil
		}
		p.deleting = true
		return m.deleteProjectCmd(m.seq, p.confirm.projectID)
	}
	return nil
}

func (m *appModel) updateDetail(msg tea.KeyMsg) tea.Cmd {
	d := &m.detail

	if d.amountOpen {
		switch msg.String() {
		case "esc":
			d.amountOpen = false
			d.amount.Blur()
			return nil
		case "enter":
			amount, ok := parseAmount(d.amount.Value())
			if !ok {
				d.notice = "enter a positive amount"
				return nil
			}
			d.amountOpen = false
			d.amount.Blur()
			d.busy = true
			d.notice = ""
			return m.createInvoiceCmd(m.seq, d.projectID, amount)
		}
		var cmd tea.Cmd
		d.amount, cmd = d.amount.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "esc", "b":
		return m.enterView(viewProjects)
	case "g":
		if d.busy || d.project == nil || d.contract != nil {
			return nil
		}
		d.busy = true
		d.notice = ""
		return m.generateContractCmd(m.seq, d.projectID)
	case "s":
		if d.busy || d.contract == nil || d.contract.Status != model.ContractStatusDraft {
			return nil
		}
		d.busy = true
		d.notice = ""
		return m.sendContractCmd(m.seq, d.contract.ID)
	case "i":
		if d.busy || d.project == nil {
			return nil
		}
		d.amountOpen = true
		if d.amount.Value() == "" && d.project.Budget != nil {
			d.amount.SetValue(trimFloat(*d.project.Budget))
		}
		return d.amount.Focus()
	}
	return nil
}

func (m *appModel) refreshRosterItems() {
	r := &m.roster
	filtered := model.FilterClients(r.clients, r.search.Value())
	items := make([]list.Item, 0, len(filtered))
	for _, c := range filtered {
		items = append(items, clientItem{
			client:         c,
			activeProjects: model.ActiveProjectCount(r.projects, c.ID),
			totalBudget:    model.TotalBudget(r.projects, c.ID),
		})
	}
	r.list.SetItems(items)
}

func (m *appModel) refreshPipelineItems() {
	p := &m.pipeline
	byID := model.ClientsByID(p.clients)
	filtered := model.FilterProjects(p.projects, byID, p.search.Value(), statusFilters[p.statusIdx])
	items := make([]list.Item, 0, len(filtered))
	for _, pr := range filtered {
		name := ""
		if c, ok := byID[pr.ClientID]; ok {
			name = c.Name
		}
		items = append(items, projectItem{project: pr, clientName: name})
	}
	p.list.SetItems(items)
}

// removeProject drops the deleted row from the local slice; the list is not
// re-fetched.
func (m *appModel) removeProject(id string) {
	p := &m.pipeline
	kept := p.projects[:0]
	for _, pr := range p.projects {
		if pr.ID != id {
			kept = append(kept, pr)
		}
	}
	p.projects = kept
	m.refreshPipelineItems()
}

func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
