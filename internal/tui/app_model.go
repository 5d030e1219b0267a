package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"freeflow-cli/internal/model"
	"freeflow-cli/internal/store"
)

type dashState struct {
	loading  bool
	err      string
	stats    *model.DashboardStats
	queue    []model.WorkItem
	activity []model.AgentEvent
}

// rosterState is the Clients page: the full fetched slices plus the filter
// input. Filtering is recomputed from the full slices on every keystroke,
// never against the server.
type rosterState struct {
	loading  bool
	err      string
	clients  []model.Client
	projects []model.Project
	search   textinput.Model
	list     list.Model
}

// pipelineState is the Projects page. statusIdx indexes statusFilters below.
type pipelineState struct {
	loading   bool
	err       string
	projects  []model.Project
	clients   []model.Client
	search    textinput.Model
	statusIdx int
	list      list.Model
	confirm   *deleteConfirm
	deleting  bool
}

// statusFilters is the cycle order for the status filter key; index 0 means
// no status filtering.
var statusFilters = []string{"all", "Intake", "Contract", "Billing", "Done"}

type deleteConfirm struct {
	projectID string
	title     string
	focus     confirmModalFocus
}

type detailState struct {
	loading   bool
	err       string
	projectID string
	project   *model.Project
	client    *model.Client
	contract  *model.Contract
	invoice   *model.Invoice

	// busy gates the mutating actions: at most one POST in flight, and the
	// triggering key is ignored until its response lands.
	busy   bool
	notice string

	amountOpen bool
	amount     textinput.Model
}

type appModel struct {
	opts   Options
	width  int
	height int

	active view
	// seq is bumped on every navigation and request start; async messages
	// carry the value they were issued under and stale ones are dropped.
	seq int

	lastAction *store.Action

	dash     dashState
	roster   rosterState
	pipeline pipelineState
	detail   detailState
	inbox    inboxModel
}

func newAppModel(opts Options) *appModel {
	m := &appModel{opts: opts, active: viewDashboard}

	m.roster.search = newSearchInput("name, email or company")
	m.roster.list = newCompactList()
	m.pipeline.search = newSearchInput("title, description or client")
	m.pipeline.list = newCompactList()
	m.detail.amount = textinput.New()
	m.detail.amount.Placeholder = "amount"
	m.detail.amount.CharLimit = 12
	m.inbox = newInboxModel()

	if st, err := opts.Store.LoadTUIState(); err == nil && st != nil {
		m.restoreState(st)
	}
	return m
}

func newSearchInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/"
	ti.CharLimit = 80
	return ti
}

func newCompactList() list.Model {
	l := list.New(nil, newCompactItemDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	return l
}

func (m *appModel) restoreState(st *store.TUIState) {
	switch st.View {
	case "clients":
		m.active = viewClients
	case "projects", "project":
		m.active = viewProjects
	case "inbox":
		m.active = viewInbox
	}
	for i, s := range statusFilters {
		if s == st.StatusFilter {
			m.pipeline.statusIdx = i
		}
	}
}

func (m *appModel) persistState() {
	st := &store.TUIState{
		Version:           1,
		View:              m.active.String(),
		SelectedProjectID: m.detail.projectID,
		StatusFilter:      statusFilters[m.pipeline.statusIdx],
	}
	_ = m.opts.Store.SaveTUIState(st)
}

func (m *appModel) Init() tea.Cmd {
	return tea.Batch(m.enterView(m.active), m.lastActionCmd())
}

// enterView switches the active view and kicks off its fetch. Each switch
// bumps the sequence so responses for the previous view are dropped.
func (m *appModel) enterView(v view) tea.Cmd {
	m.active = v
	m.seq++

	switch v {
	case viewDashboard:
		m.dash.loading = true
		m.dash.err = ""
		return m.loadDashboardCmd(m.seq)
	case viewClients:
		m.roster.loading = true
		m.roster.err = ""
		return m.loadClientsCmd(m.seq)
	case viewProjects:
		m.pipeline.loading = true
		m.pipeline.err = ""
		m.pipeline.confirm = nil
		m.pipeline.deleting = false
		return m.loadProjectsCmd(m.seq)
	case viewInbox:
		return m.inbox.focusCmd()
	}
	return nil
}

// openProject navigates to the detail view for one project.
func (m *appModel) openProject(id string) tea.Cmd {
	m.active = viewProjectDetail
	m.seq++
	m.detail = detailState{
		loading:   true,
		projectID: id,
		amount:    m.detail.amount,
	}
	m.detail.amount.SetValue("")
	m.opts.Store.AppendRecentProject(id)
	return m.loadProjectDetailCmd(m.seq, id)
}
