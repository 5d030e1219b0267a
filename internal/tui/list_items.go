package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"freeflow-cli/internal/model"
)

type clientItem struct {
	client         model.Client
	activeProjects int
	totalBudget    float64
}

func (i clientItem) FilterValue() string { return i.client.Name }

func (i clientItem) Title() string {
	company := ""
	if i.client.Company != nil && *i.client.Company != "" {
		company = " · " + *i.client.Company
	}
	meta := styleMuted().Render(fmt.Sprintf("%s%s · %d active · $%.0f", i.client.Email, company, i.activeProjects, i.totalBudget))
	return i.client.Name + "  " + meta
}

type projectItem struct {
	project    model.Project
	clientName string
}

func (i projectItem) FilterValue() string { return i.project.Title }

func (i projectItem) Title() string {
	badge := statusBadge(i.project.Status)
	client := i.clientName
	if client == "" {
		client = i.project.ClientID
	}
	budget := ""
	if i.project.Budget != nil {
		budget = fmt.Sprintf(" · $%.0f", *i.project.Budget)
	}
	return badge + " " + i.project.Title + "  " + styleMuted().Render(client+budget)
}

func statusBadge(s model.ProjectStatus) string {
	var c lipgloss.TerminalColor
	switch s {
	case model.ProjectStatusIntake:
		c = colorAccent
	case model.ProjectStatusContract:
		c = colorConfidenceMid
	case model.ProjectStatusBilling:
		c = colorConfidenceHigh
	case model.ProjectStatusDone:
		c = colorMuted
	default:
		c = colorMuted
	}
	return lipgloss.NewStyle().Foreground(c).Render("[" + string(s) + "]")
}
