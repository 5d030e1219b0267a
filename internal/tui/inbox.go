package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"freeflow-cli/internal/model"
)

// The intake workflow is an explicit state machine. Every network call maps
// to exactly one transition edge, and nothing fires automatically: the user
// triggers extraction, retry and submission by hand.
type draftState int

const (
	draftEmpty draftState = iota
	draftExtracting
	draftReviewable
	draftFlagged
	draftUnparseable
	draftSubmitting
	draftCreated
)

func (s draftState) String() string {
	switch s {
	case draftEmpty:
		return "empty"
	case draftExtracting:
		return "extracting"
	case draftReviewable:
		return "reviewable"
	case draftFlagged:
		return "flagged"
	case draftUnparseable:
		return "unparseable"
	case draftSubmitting:
		return "submitting"
	case draftCreated:
		return "created"
	}
	return "unknown"
}

// Review field order; tab cycles through them.
const (
	fieldClientName = iota
	fieldClientEmail
	fieldClientCompany
	fieldProjectTitle
	fieldProjectDescription
	fieldProjectBudget
	fieldProjectTimeline
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Client name",
	"Client email",
	"Company",
	"Project title",
	"Description",
	"Budget ($)",
	"Timeline",
}

// exampleEmail is the canned inquiry behind the "load example" key.
const exampleEmail = `Hi there!

I'm Jane Doe from Acme Corporation. We're looking to redesign our company website landing page to be more modern and mobile-friendly.

The project needs to be completed within the next month, and we have a budget of around $2,500. We want something that really stands out and converts better.

Could you help us with this? Let me know what you think.

Best regards,
Jane Doe
jane@acmecorp.com
Acme Corporation`

type inboxModel struct {
	state draftState
	// seq guards the inbox's own in-flight call. It is independent of the
	// page-fetch sequence: the workflow survives switching views, but a
	// discarded draft must never resurrect from a late response.
	seq int

	input   textarea.Model
	errText string

	draft    model.IntakeDraft
	fields   [fieldCount]textinput.Model
	focusIdx int

	createdProjectID string
	createdClientID  string
}

func newInboxModel() inboxModel {
	ta := textarea.New()
	ta.Placeholder = "Paste the client inquiry email here..."
	ta.CharLimit = 0
	ta.SetHeight(10)

	im := inboxModel{state: draftEmpty, input: ta}
	for i := range im.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 200
		im.fields[i] = ti
	}
	return im
}

func (im *inboxModel) focusCmd() tea.Cmd {
	if im.state == draftEmpty {
		return im.input.Focus()
	}
	return nil
}

// setFields copies the extracted draft into the editable inputs.
func (im *inboxModel) setFields(d model.IntakeDraft) {
	im.draft = d
	im.fields[fieldClientName].SetValue(d.Client.Name)
	im.fields[fieldClientEmail].SetValue(d.Client.Email)
	im.fields[fieldClientCompany].SetValue(d.Client.Company)
	im.fields[fieldProjectTitle].SetValue(d.Project.Title)
	im.fields[fieldProjectDescription].SetValue(d.Project.Description)
	if d.Project.Budget != nil {
		im.fields[fieldProjectBudget].SetValue(strconv.FormatFloat(*d.Project.Budget, 'f', -1, 64))
	} else {
		im.fields[fieldProjectBudget].SetValue("")
	}
	im.fields[fieldProjectTimeline].SetValue(d.Project.Timeline)
	im.focusField(fieldClientName)
}

func (im *inboxModel) focusField(idx int) {
	im.focusIdx = idx
	for i := range im.fields {
		if i == idx {
			im.fields[i].Focus()
		} else {
			im.fields[i].Blur()
		}
	}
}

// collectDraft rebuilds the draft from the inputs. Everything the user typed
// is forwarded verbatim; only the budget is parsed, and unparseable budget
// text clears the field rather than guessing.
func (im *inboxModel) collectDraft() model.IntakeDraft {
	d := im.draft
	d.Client.Name = im.fields[fieldClientName].Value()
	d.Client.Email = im.fields[fieldClientEmail].Value()
	d.Client.Company = im.fields[fieldClientCompany].Value()
	d.Project.Title = im.fields[fieldProjectTitle].Value()
	d.Project.Description = im.fields[fieldProjectDescription].Value()
	d.Project.Timeline = im.fields[fieldProjectTimeline].Value()

	d.Project.Budget = nil
	if v := strings.TrimSpace(im.fields[fieldProjectBudget].Value()); v != "" {
		if b, err := strconv.ParseFloat(v, 64); err == nil {
			d.Project.Budget = &b
		}
	}
	return d
}

// discard resets the workflow to a fresh input. Bumping seq drops any
// response still in flight.
func (im *inboxModel) discard() tea.Cmd {
	im.seq++
	im.state = draftEmpty
	im.errText = ""
	im.draft = model.IntakeDraft{}
	im.input.SetValue("")
	im.createdProjectID = ""
	im.createdClientID = ""
	return im.input.Focus()
}

// updateInbox handles all inbox-view input and the inbox async results.
func (m *appModel) updateInbox(msg tea.Msg) tea.Cmd {
	im := &m.inbox

	switch msg := msg.(type) {
	case extractDoneMsg:
		if msg.seq != im.seq || im.state != draftExtracting {
			return nil
		}
		if msg.err != nil {
			// Back to the editable input with the typed text preserved.
			im.state = draftEmpty
			im.errText = msg.err.Error()
			return im.input.Focus()
		}
		im.errText = ""
		switch msg.draft.Status {
		case model.IntakeMalicious:
			im.state = draftFlagged
			im.draft = *msg.draft
		case model.IntakeUnableToParse:
			im.state = draftUnparseable
			im.draft = *msg.draft
		default:
			im.state = draftReviewable
			im.setFields(*msg.draft)
		}
		return nil

	case intakeCreatedMsg:
		if msg.seq != im.seq || im.state != draftSubmitting {
			return nil
		}
		if msg.err != nil {
			im.state = draftReviewable
			im.errText = msg.err.Error()
			return nil
		}
		im.state = draftCreated
		im.errText = ""
		im.createdProjectID = msg.res.ProjectID
		im.createdClientID = msg.res.ClientID
		return m.lastActionCmd()

	case tea.KeyMsg:
		return m.inboxKey(msg)
	}
	return nil
}

func (m *appModel) inboxKey(msg tea.KeyMsg) tea.Cmd {
	im := &m.inbox

	switch im.state {
	case draftEmpty:
		if !im.input.Focused() && msg.String() != "ctrl+e" {
			switch msg.String() {
			case "i", "enter":
				return im.input.Focus()
			}
			return nil
		}
		switch msg.String() {
		case "esc":
			im.input.Blur()
			return nil
		case "ctrl+e":
			if strings.TrimSpace(im.input.Value()) == "" {
				return nil
			}
			im.seq++
			im.state = draftExtracting
			im.errText = ""
			im.input.Blur()
			return m.extractCmd(im.seq, im.input.Value())
		case "ctrl+l":
			im.input.SetValue(exampleEmail)
			return nil
		}
		var cmd tea.Cmd
		im.input, cmd = im.input.Update(msg)
		return cmd

	case draftExtracting, draftSubmitting:
		// Input is locked while the single in-flight call runs.
		return nil

	case draftReviewable:
		switch msg.String() {
		case "tab", "down":
			im.focusField((im.focusIdx + 1) % fieldCount)
			return nil
		case "shift+tab", "up":
			im.focusField((im.focusIdx + fieldCount - 1) % fieldCount)
			return nil
		case "ctrl+e":
			im.seq++
			im.state = draftSubmitting
			im.errText = ""
			return m.submitDraftCmd(im.seq, im.collectDraft())
		case "esc":
			return im.discard()
		}
		var cmd tea.Cmd
		im.fields[im.focusIdx], cmd = im.fields[im.focusIdx].Update(msg)
		return cmd

	case draftFlagged:
		// Terminal state: the only way out is discarding the inquiry.
		switch msg.String() {
		case "esc", "d":
			return im.discard()
		}
		return nil

	case draftUnparseable:
		switch msg.String() {
		case "r":
			// One retry POST with the same text the user already entered.
			im.seq++
			im.state = draftExtracting
			im.errText = ""
			return m.extractCmd(im.seq, im.input.Value())
		case "esc", "d":
			return im.discard()
		}
		return nil

	case draftCreated:
		switch msg.String() {
		case "enter":
			id := im.createdProjectID
			im.discard()
			return m.openProject(id)
		case "n":
			return im.discard()
		}
		return nil
	}
	return nil
}
