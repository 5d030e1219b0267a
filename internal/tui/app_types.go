package tui

import (
	"freeflow-cli/internal/api"
	"freeflow-cli/internal/model"
	"freeflow-cli/internal/store"
)

type view int

const (
	viewDashboard view = iota
	viewClients
	viewProjects
	viewProjectDetail
	viewInbox
)

func (v view) String() string {
	switch v {
	case viewDashboard:
		return "dashboard"
	case viewClients:
		return "clients"
	case viewProjects:
		return "projects"
	case viewProjectDetail:
		return "project"
	case viewInbox:
		return "inbox"
	}
	return "unknown"
}

// Async results. Every message carries the sequence number it was issued
// under; the update loop drops anything stale, so a response landing after
// the user navigated away can never touch the current view.

type dashboardLoadedMsg struct {
	seq      int
	stats    *model.DashboardStats
	queue    []model.WorkItem
	activity []model.AgentEvent
	err      error
}

type clientsLoadedMsg struct {
	seq      int
	clients  []model.Client
	projects []model.Project
	err      error
}

type projectsLoadedMsg struct {
	seq      int
	projects []model.Project
	clients  []model.Client
	err      error
}

type projectDetailLoadedMsg struct {
	seq      int
	project  *model.Project
	client   *model.Client
	contract *model.Contract
	err      error
}

type projectDeletedMsg struct {
	seq       int
	projectID string
	err       error
}

type contractGeneratedMsg struct {
	seq      int
	contract *model.Contract
	err      error
}

type contractSentMsg struct {
	seq int
	err error
}

type invoiceCreatedMsg struct {
	seq     int
	invoice *model.Invoice
	err     error
}

type extractDoneMsg struct {
	seq   int
	draft *model.IntakeDraft
	err   error
}

type intakeCreatedMsg struct {
	seq int
	res *api.IntakeCreateResult
	err error
}

type lastActionMsg struct {
	action *store.Action
}
