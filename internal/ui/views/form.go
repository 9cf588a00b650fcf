package views

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/dgboard/internal/board"
	"github.com/tgienger/dgboard/internal/models"
	"github.com/tgienger/dgboard/internal/ui/keys"
	"github.com/tgienger/dgboard/internal/ui/styles"
)

// Form field order, also the tab order
const (
	fieldTitle = iota
	fieldDescription
	fieldAssignee
	fieldPriority
	fieldStatus
	fieldStart
	fieldDue
	fieldEstimate
	fieldTags
	fieldSave
	fieldCount
)

// FormView is the create/edit modal
type FormView struct {
	styles *styles.Styles
	keys   keys.KeyMap

	title       textinput.Model
	description textarea.Model
	start       textinput.Model
	due         textinput.Model
	estimate    textinput.Model
	tags        textinput.Model

	assignee string
	priority string
	status   string

	creating bool
	focusIdx int
	err      string

	width  int
	height int
}

func NewFormView(s *styles.Styles) *FormView {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 200

	desc := textarea.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 2000
	desc.SetWidth(50)
	desc.SetHeight(3)
	desc.ShowLineNumbers = false

	start := textinput.New()
	start.Placeholder = "YYYY-MM-DD"
	start.CharLimit = 10

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = 10

	estimate := textinput.New()
	estimate.Placeholder = "hours"
	estimate.CharLimit = 8

	tags := textinput.New()
	tags.Placeholder = "ui, backend"
	tags.CharLimit = 200

	return &FormView{
		styles:      s,
		keys:        keys.DefaultKeyMap(),
		title:       title,
		description: desc,
		start:       start,
		due:         due,
		estimate:    estimate,
		tags:        tags,
	}
}

// Load fills the inputs from f and focuses the title
func (v *FormView) Load(f board.Form, creating bool) tea.Cmd {
	v.title.SetValue(f.Title)
	v.description.SetValue(f.Description)
	v.start.SetValue(f.StartDate)
	v.due.SetValue(f.DueDate)
	v.estimate.SetValue(f.Estimate)
	v.tags.SetValue(f.Tags)
	for _, in := range []*textinput.Model{&v.title, &v.start, &v.due, &v.estimate, &v.tags} {
		in.CursorEnd()
	}
	v.assignee = f.Assignee
	v.priority = f.Priority
	v.status = f.Status

	v.creating = creating
	v.err = ""
	v.focusIdx = fieldTitle
	v.updateFocus()
	return textinput.Blink
}

// Values returns the raw form inputs
func (v *FormView) Values() board.Form {
	return board.Form{
		Title:       v.title.Value(),
		Description: v.description.Value(),
		Assignee:    v.assignee,
		Priority:    v.priority,
		Status:      v.status,
		StartDate:   v.start.Value(),
		DueDate:     v.due.Value(),
		Estimate:    v.estimate.Value(),
		Tags:        v.tags.Value(),
	}
}

// SetError shows a failed save and moves focus to the offending field
func (v *FormView) SetError(err error) {
	var fe *board.FieldError
	switch {
	case errors.Is(err, board.ErrTitleRequired):
		v.err = "Title is required"
		v.focusIdx = fieldTitle
	case errors.As(err, &fe):
		v.err = fmt.Sprintf("Invalid %s", fe.Field)
		switch fe.Field {
		case "startDate":
			v.focusIdx = fieldStart
		case "dueDate":
			v.focusIdx = fieldDue
		}
	default:
		v.err = err.Error()
	}
	v.updateFocus()
}

// Err is the message shown under the form, empty when none
func (v *FormView) Err() string { return v.err }

func (v *FormView) Init() tea.Cmd { return nil }

func (v *FormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *FormView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		return v, emit(CancelForm{})

	case key.Matches(msg, v.keys.Save):
		return v, emit(SubmitForm{})

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % fieldCount
		v.updateFocus()
		return v, nil

	case key.Matches(msg, v.keys.BackTab):
		v.focusIdx = (v.focusIdx + fieldCount - 1) % fieldCount
		v.updateFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		// Enter on the description is a newline
		if v.focusIdx == fieldSave {
			return v, emit(SubmitForm{})
		}
		if v.focusIdx != fieldDescription {
			v.focusIdx++
			v.updateFocus()
			return v, nil
		}

	case key.Matches(msg, v.keys.Cycle) && v.isSelect():
		dir := 1
		if msg.String() == "left" {
			dir = -1
		}
		v.cycleSelect(dir)
		return v, nil
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case fieldTitle:
		v.title, cmd = v.title.Update(msg)
	case fieldDescription:
		v.description, cmd = v.description.Update(msg)
	case fieldStart:
		v.start, cmd = v.start.Update(msg)
	case fieldDue:
		v.due, cmd = v.due.Update(msg)
	case fieldEstimate:
		v.estimate, cmd = v.estimate.Update(msg)
	case fieldTags:
		v.tags, cmd = v.tags.Update(msg)
	}
	return v, cmd
}

func (v *FormView) isSelect() bool {
	return v.focusIdx == fieldAssignee || v.focusIdx == fieldPriority || v.focusIdx == fieldStatus
}

func (v *FormView) cycleSelect(dir int) {
	switch v.focusIdx {
	case fieldAssignee:
		opts := make([]string, len(models.Roster))
		for i, a := range models.Roster {
			opts[i] = string(a)
		}
		v.assignee = cycle(opts, v.assignee, dir)
	case fieldPriority:
		opts := make([]string, len(models.Priorities))
		for i, p := range models.Priorities {
			opts[i] = string(p)
		}
		v.priority = cycle(opts, v.priority, dir)
	case fieldStatus:
		opts := make([]string, len(models.Statuses))
		for i, s := range models.Statuses {
			opts[i] = string(s)
		}
		v.status = cycle(opts, v.status, dir)
	}
}

func (v *FormView) updateFocus() {
	v.title.Blur()
	v.description.Blur()
	v.start.Blur()
	v.due.Blur()
	v.estimate.Blur()
	v.tags.Blur()

	switch v.focusIdx {
	case fieldTitle:
		v.title.Focus()
	case fieldDescription:
		v.description.Focus()
	case fieldStart:
		v.start.Focus()
	case fieldDue:
		v.due.Focus()
	case fieldEstimate:
		v.estimate.Focus()
	case fieldTags:
		v.tags.Focus()
	}
}

func (v *FormView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	style := func(idx int) lipgloss.Style {
		if idx == v.focusIdx {
			return s.InputFocused
		}
		return s.Input
	}
	selectBox := func(idx int, value string) string {
		return style(idx).Width(inputWidth / 3).Render("‹ " + value + " ›")
	}

	formTitle := "New Task"
	if !v.creating {
		formTitle = "Edit Task"
	}

	btnStyle := s.Button
	if v.focusIdx == fieldSave {
		btnStyle = s.ButtonFocused
	}

	errLine := ""
	if v.err != "" {
		errLine = s.ErrorText.Render(v.err)
	}

	v.description.SetWidth(inputWidth)

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(formTitle),
		"",
		"Title:",
		style(fieldTitle).Width(inputWidth).Render(v.title.View()),
		"Description:",
		style(fieldDescription).Render(v.description.View()),
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Left, "Assignee:", selectBox(fieldAssignee, v.assignee)),
			lipgloss.JoinVertical(lipgloss.Left, "Priority:", selectBox(fieldPriority, v.priority)),
			lipgloss.JoinVertical(lipgloss.Left, "Status:", selectBox(fieldStatus, v.status)),
		),
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Left, "Start:", style(fieldStart).Width(14).Render(v.start.View())),
			lipgloss.JoinVertical(lipgloss.Left, "Due:", style(fieldDue).Width(14).Render(v.due.View())),
			lipgloss.JoinVertical(lipgloss.Left, "Estimate (h):", style(fieldEstimate).Width(12).Render(v.estimate.View())),
		),
		"Tags (comma separated):",
		style(fieldTags).Width(inputWidth).Render(v.tags.View()),
		"",
		btnStyle.Render(" Save "),
		errLine,
		s.TitleMuted.Render("Tab: next • ←→: change • Ctrl+S: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
