package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"freeflow-cli/internal/model"
)

const sidebarWidth = 14

var navEntries = []struct {
	label string
	key   string
	v     view
}{
	{"Dashboard", "1", viewDashboard},
	{"Clients", "2", viewClients},
	{"Projects", "3", viewProjects},
	{"Inbox", "4", viewInbox},
}

func (m *appModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	body := ""
	switch m.active {
	case viewDashboard:
		body = m.viewDashboardBody()
	case viewClients:
		body = m.viewRosterBody()
	case viewProjects:
		body = m.viewPipelineBody()
	case viewProjectDetail:
		body = m.viewDetailBody()
	case viewInbox:
		body = m.viewInboxBody()
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), " ", body)
	return strings.Join([]string{m.viewHeader(), content, m.viewFooter()}, "\n")
}

func (m *appModel) viewHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("FreeFlow")
	who := ""
	if m.opts.Session != nil {
		who = styleMuted().Render("  " + m.opts.Session.Name)
	}
	last := ""
	if m.lastAction != nil {
		last = styleMuted().Render(fmt.Sprintf("  last: %s %s", m.lastAction.Kind, m.lastAction.CreatedAt.Local().Format("15:04")))
	}
	return title + who + last
}

func (m *appModel) viewSidebar() string {
	active := m.active
	if active == viewProjectDetail {
		active = viewProjects
	}

	lines := make([]string, 0, len(navEntries))
	for _, e := range navEntries {
		st := lipgloss.NewStyle().Width(sidebarWidth)
		if e.v == active {
			st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
		} else {
			st = st.Foreground(colorSurfaceFg)
		}
		lines = append(lines, st.Render(" "+e.key+" "+e.label))
	}
	return strings.Join(lines, "\n")
}

func (m *appModel) viewFooter() string {
	help := "q: quit   r: refresh"
	switch m.active {
	case viewClients:
		help = "/: search   q: quit   r: refresh"
	case viewProjects:
		help = "/: search   s: status filter   enter: open   x: delete   q: quit"
	case viewProjectDetail:
		help = "g: contract   s: send   i: invoice   b: back   q: quit"
	case viewInbox:
		help = m.inboxFooter()
	}
	return styleMuted().Render(help)
}

func (m *appModel) contentWidth() int {
	w := m.width - sidebarWidth - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m *appModel) viewDashboardBody() string {
	d := m.dash
	if d.loading {
		return styleMuted().Render("loading dashboard...")
	}
	if d.err != "" {
		return styleError().Render(d.err)
	}
	if d.stats == nil {
		return styleMuted().Render("no data")
	}

	var b strings.Builder
	bold := lipgloss.NewStyle().Bold(true)

	b.WriteString(bold.Render("Pipeline") + "\n")
	b.WriteString(fmt.Sprintf("  intake %d   contract %d   billing %d\n",
		d.stats.Projects.Intake, d.stats.Projects.Contract, d.stats.Projects.Billing))
	b.WriteString(fmt.Sprintf("  contracts: %d pending, %d signed   invoices: %d sent, %d paid, %d overdue\n",
		d.stats.Contracts.Pending, d.stats.Contracts.Signed,
		d.stats.Invoices.Sent, d.stats.Invoices.Paid, d.stats.Invoices.Overdue))

	b.WriteString("\n" + bold.Render("Work queue") + "\n")
	if len(d.queue) == 0 {
		b.WriteString(styleMuted().Render("  nothing waiting on you") + "\n")
	}
	for _, it := range d.queue {
		b.WriteString(fmt.Sprintf("  [%s] %s %s\n", it.Priority, it.Title, styleMuted().Render(it.Description)))
	}

	b.WriteString("\n" + bold.Render("Agent activity") + "\n")
	if len(d.activity) == 0 {
		b.WriteString(styleMuted().Render("  no recent activity") + "\n")
	}
	for _, ev := range d.activity {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			styleMuted().Render(ev.CreatedAt.Local().Format("Jan 02 15:04")), ev.Kind, styleMuted().Render(ev.EntityType)))
	}
	return b.String()
}

func (m *appModel) viewRosterBody() string {
	r := m.roster
	if r.loading {
		return styleMuted().Render("loading clients...")
	}
	if r.err != "" {
		return styleError().Render(r.err)
	}

	search := r.search.View()
	if len(r.list.Items()) == 0 {
		empty := "no clients yet"
		if strings.TrimSpace(r.search.Value()) != "" {
			empty = "no clients match the filter"
		}
		return search + "\n\n" + styleMuted().Render(empty)
	}
	return search + "\n" + r.list.View()
}

func (m *appModel) viewPipelineBody() string {
	p := m.pipeline
	if p.loading {
		return styleMuted().Render("loading projects...")
	}
	if p.err != "" && p.confirm == nil {
		return styleError().Render(p.err)
	}

	if p.confirm != nil {
		body := fmt.Sprintf("Delete project %q? This cannot be undone.", p.confirm.title)
		if p.deleting {
			body += "\n\n" + styleMuted().Render("deleting...")
		}
		return renderConfirmModal(m.contentWidth(), "Delete project", body, "Delete", "Cancel", p.confirm.focus)
	}

	head := p.search.View() + "   " + styleMuted().Render("status: "+statusFilters[p.statusIdx])
	if len(p.list.Items()) == 0 {
		empty := "no projects yet"
		if strings.TrimSpace(p.search.Value()) != "" || p.statusIdx != 0 {
			empty = "no projects match the filter"
		}
		return head + "\n\n" + styleMuted().Render(empty)
	}
	return head + "\n" + p.list.View()
}

func (m *appModel) viewDetailBody() string {
	d := m.detail
	if d.loading {
		return styleMuted().Render("loading project...")
	}
	if d.err != "" {
		return styleError().Render(d.err)
	}
	if d.project == nil {
		return styleMuted().Render("no project selected")
	}

	var b strings.Builder
	bold := lipgloss.NewStyle().Bold(true)

	b.WriteString(bold.Render(d.project.Title) + "  " + statusBadge(d.project.Status) + "\n")
	if d.client != nil {
		line := d.client.Name + " <" + d.client.Email + ">"
		if d.client.Company != nil && *d.client.Company != "" {
			line += " · " + *d.client.Company
		}
		b.WriteString(styleMuted().Render(line) + "\n")
	}
	b.WriteString("\n" + d.project.Description + "\n\n")
	if d.project.Budget != nil {
		b.WriteString(fmt.Sprintf("budget: $%.0f", *d.project.Budget))
	}
	if d.project.Timeline != nil && *d.project.Timeline != "" {
		b.WriteString("   timeline: " + *d.project.Timeline)
	}
	b.WriteString("\n\n")

	b.WriteString(bold.Render("Contract") + "\n")
	if d.contract == nil {
		b.WriteString(styleMuted().Render("  none yet (press g to generate)") + "\n")
	} else {
		b.WriteString("  status: " + string(d.contract.Status) + "\n")
		if md := contractVariablesMarkdown(d.contract); md != "" {
			b.WriteString(renderMarkdown(md, m.contentWidth()-2) + "\n")
		}
	}

	if d.invoice != nil {
		b.WriteString("\n" + bold.Render("Invoice") + "\n")
		b.WriteString(fmt.Sprintf("  $%.2f · %s · due %s\n",
			d.invoice.Amount, d.invoice.Status, d.invoice.DueDate.Format("2006-01-02")))
	}

	if d.amountOpen {
		b.WriteString("\ninvoice amount: " + d.amount.View() + "\n")
	}
	if d.busy {
		b.WriteString("\n" + styleMuted().Render("working...") + "\n")
	}
	if d.notice != "" {
		b.WriteString("\n" + styleMuted().Render(d.notice) + "\n")
	}
	return b.String()
}

// contractVariablesMarkdown renders the generated contract's variables as a
// small markdown document for the glamour preview.
func contractVariablesMarkdown(c *model.Contract) string {
	if c == nil || len(c.Variables) == 0 {
		return ""
	}
	keys := make([]string, 0, len(c.Variables))
	for k := range c.Variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("### Terms\n\n")
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("- **%s**: %v\n", k, c.Variables[k]))
	}
	return b.String()
}

func (m *appModel) viewInboxBody() string {
	im := m.inbox
	bold := lipgloss.NewStyle().Bold(true)

	switch im.state {
	case draftEmpty:
		out := bold.Render("Email intake") + "\n\n" + im.input.View()
		if im.errText != "" {
			out += "\n" + styleError().Render(im.errText)
		}
		return out

	case draftExtracting:
		return bold.Render("Email intake") + "\n\n" + styleMuted().Render("extracting with AI...")

	case draftReviewable:
		var b strings.Builder
		b.WriteString(bold.Render("Review extracted draft") + "\n\n")
		for i := range im.fields {
			label := fieldLabels[i]
			cursor := "  "
			if i == im.focusIdx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-14s %s\n", cursor, label, im.fields[i].View()))
		}
		b.WriteString("\n")
		b.WriteString(confidenceBar("budget  ", im.draft.Confidence.Budget, 20) + "\n")
		b.WriteString(confidenceBar("timeline", im.draft.Confidence.Timeline, 20) + "\n")
		if im.draft.Status == model.IntakeNeedsReview {
			b.WriteString("\n" + styleMuted().Render("low confidence: please double-check the highlighted fields") + "\n")
		}
		if im.errText != "" {
			b.WriteString("\n" + styleError().Render(im.errText) + "\n")
		}
		return b.String()

	case draftFlagged:
		msg := im.draft.SecurityMessage
		if msg == "" {
			msg = "this email was flagged as a prompt-injection attempt"
		}
		return bold.Render("Inquiry flagged") + "\n\n" + styleError().Render(msg) + "\n\n" +
			styleMuted().Render("the draft cannot be created; discard to start over")

	case draftUnparseable:
		return bold.Render("Could not parse") + "\n\n" +
			"The extractor could not find project details in this email." + "\n\n" +
			styleMuted().Render("r: retry with the same text   esc: discard")

	case draftSubmitting:
		return bold.Render("Review extracted draft") + "\n\n" + styleMuted().Render("creating client and project...")

	case draftCreated:
		return bold.Render("Project created") + "\n\n" +
			fmt.Sprintf("project %s for client %s\n", im.createdProjectID, im.createdClientID)
	}
	return ""
}

func (m *appModel) inboxFooter() string {
	switch m.inbox.state {
	case draftEmpty:
		if m.inbox.input.Focused() {
			return "ctrl+e: extract   ctrl+l: load example   esc: unfocus"
		}
		return "i: edit   ctrl+e: extract   q: quit"
	case draftReviewable:
		return "tab: next field   ctrl+e: create project   esc: discard"
	case draftFlagged:
		return "esc: discard"
	case draftUnparseable:
		return "r: retry   esc: discard"
	case draftCreated:
		return "enter: open project   n: new inquiry"
	}
	return "q: quit"
}
