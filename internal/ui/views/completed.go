package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/dgboard/internal/models"
	"github.com/tgienger/dgboard/internal/projection"
	"github.com/tgienger/dgboard/internal/tasks"
	"github.com/tgienger/dgboard/internal/ui/keys"
	"github.com/tgienger/dgboard/internal/ui/styles"
)

// Which input of the completed view has the keyboard
type completedFocus int

const (
	focusTable completedFocus = iota
	focusSearch
	focusFrom
	focusTo
)

// CompletedView lists Done tasks in a table
type CompletedView struct {
	styles *styles.Styles
	keys   keys.KeyMap

	tasks  []models.Task
	rows   []models.Task
	filter projection.CompletedFilter

	table       table.Model
	searchInput textinput.Model
	fromInput   textinput.Model
	toInput     textinput.Model
	focus       completedFocus

	err    string
	width  int
	height int
}

func NewCompletedView(s *styles.Styles) *CompletedView {
	search := textinput.New()
	search.Placeholder = "Search completed..."
	search.CharLimit = 100

	from := textinput.New()
	from.Placeholder = "from YYYY-MM-DD"
	from.CharLimit = 10

	to := textinput.New()
	to.Placeholder = "to YYYY-MM-DD"
	to.CharLimit = 10

	t := table.New(
		table.WithColumns(completedColumns(100)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	v := &CompletedView{
		styles:      s,
		keys:        keys.DefaultKeyMap(),
		table:       t,
		searchInput: search,
		fromInput:   from,
		toInput:     to,
	}
	v.applyStyles()
	return v
}

func completedColumns(width int) []table.Column {
	// Fixed columns take 52 cells, title and tags share the rest
	flex := max(width-52, 20)
	return []table.Column{
		{Title: "Title", Width: flex * 3 / 5},
		{Title: "Assignee", Width: 9},
		{Title: "Priority", Width: 9},
		{Title: "Due", Width: 10},
		{Title: "Est", Width: 6},
		{Title: "Tags", Width: flex * 2 / 5},
		{Title: "Updated", Width: 10},
	}
}

func (v *CompletedView) applyStyles() {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(v.styles.Theme.Border).
		BorderBottom(true).
		Foreground(v.styles.Theme.Accent).
		Bold(true)
	ts.Cell = ts.Cell.Foreground(v.styles.Theme.Foreground)
	ts.Selected = ts.Selected.
		Foreground(v.styles.Theme.Primary).
		Background(v.styles.Theme.Selection).
		Bold(true)
	v.table.SetStyles(ts)
}

// Restyle picks up a theme change
func (v *CompletedView) Restyle() { v.applyStyles() }

// Typing reports whether keystrokes belong to a text input
func (v *CompletedView) Typing() bool { return v.focus != focusTable }

// Filter returns the active completed filter
func (v *CompletedView) Filter() projection.CompletedFilter { return v.filter }

// Rows are the Done tasks currently listed
func (v *CompletedView) Rows() []models.Task { return v.rows }

// Selected returns the task under the table cursor
func (v *CompletedView) Selected() (models.Task, bool) {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.rows) {
		return models.Task{}, false
	}
	return v.rows[i], true
}

func (v *CompletedView) SetTasks(tasks []models.Task) {
	v.tasks = tasks
	v.refresh()
}

func (v *CompletedView) refresh() {
	v.rows = projection.Completed(v.tasks, v.filter)

	rows := make([]table.Row, len(v.rows))
	for i, t := range v.rows {
		rows[i] = table.Row{
			t.Title,
			string(t.Assignee),
			string(t.Priority),
			orDash(t.DueDate.String()),
			tasks.FormatEstimate(t.EstimateHours),
			strings.Join(t.Tags, ", "),
			t.UpdatedAt.Local().Format("2006-01-02"),
		}
	}
	v.table.SetRows(rows)
	if v.table.Cursor() >= len(rows) {
		v.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (v *CompletedView) Init() tea.Cmd { return nil }

func (v *CompletedView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.table.SetColumns(completedColumns(contentWidth - 4))
		v.table.SetWidth(contentWidth)
		v.table.SetHeight(max(v.height-14, 3))
		return v, nil

	case TasksChanged:
		v.SetTasks(msg.Tasks)
		return v, nil

	case tea.KeyMsg:
		switch v.focus {
		case focusSearch:
			return v.updateSearch(msg)
		case focusFrom, focusTo:
			return v.updateDates(msg)
		}
		return v.updateTable(msg)
	}
	return v, nil
}

func (v *CompletedView) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.err = ""

	switch {
	case key.Matches(msg, v.keys.Search):
		v.focus = focusSearch
		v.table.Blur()
		v.searchInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Dates):
		v.focus = focusFrom
		v.table.Blur()
		v.fromInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Assignee):
		v.filter.Assignee = cycle(assigneeOptions(projection.Assignees(v.done())), selection(v.filter.Assignee), 1)
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.Priority):
		v.filter.Priority = cycle(priorityOptions(), selection(v.filter.Priority), 1)
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.Clear):
		v.filter = projection.CompletedFilter{}
		v.searchInput.SetValue("")
		v.fromInput.SetValue("")
		v.toInput.SetValue("")
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.Edit), key.Matches(msg, v.keys.Enter):
		if t, ok := v.Selected(); ok {
			return v, emit(OpenEditor{Task: &t})
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// done is every Done task, the pool the assignee selector offers
func (v *CompletedView) done() []models.Task {
	return projection.Completed(v.tasks, projection.CompletedFilter{})
}

func (v *CompletedView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, v.keys.Back) || key.Matches(msg, v.keys.Enter) {
		v.blurInputs()
		return v, nil
	}

	var cmd tea.Cmd
	v.searchInput, cmd = v.searchInput.Update(msg)
	v.filter.Query = v.searchInput.Value()
	v.refresh()
	return v, cmd
}

func (v *CompletedView) updateDates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.blurInputs()
		return v, nil

	case key.Matches(msg, v.keys.Tab), key.Matches(msg, v.keys.BackTab):
		if v.focus == focusFrom {
			v.focus = focusTo
			v.fromInput.Blur()
			v.toInput.Focus()
		} else {
			v.focus = focusFrom
			v.toInput.Blur()
			v.fromInput.Focus()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if err := v.applyDates(); err != nil {
			v.err = err.Error()
			return v, nil
		}
		v.blurInputs()
		return v, nil
	}

	var cmd tea.Cmd
	if v.focus == focusFrom {
		v.fromInput, cmd = v.fromInput.Update(msg)
	} else {
		v.toInput, cmd = v.toInput.Update(msg)
	}
	return v, cmd
}

// applyDates installs both bounds, leaving the filter untouched if either
// does not parse
func (v *CompletedView) applyDates() error {
	from, err := models.ParseDate(strings.TrimSpace(v.fromInput.Value()))
	if err != nil {
		return fmt.Errorf("invalid from date %q", v.fromInput.Value())
	}
	to, err := models.ParseDate(strings.TrimSpace(v.toInput.Value()))
	if err != nil {
		return fmt.Errorf("invalid to date %q", v.toInput.Value())
	}
	v.filter.From = from
	v.filter.To = to
	v.err = ""
	v.refresh()
	return nil
}

func (v *CompletedView) blurInputs() {
	v.focus = focusTable
	v.searchInput.Blur()
	v.fromInput.Blur()
	v.toInput.Blur()
	v.table.Focus()
}

func (v *CompletedView) View() string {
	s := v.styles

	search := s.FilterValue.Render(orDash(v.filter.Query))
	if v.focus == focusSearch {
		search = v.searchInput.View()
	}

	dates := s.FilterValue.Render(orDash(v.filter.From.String()) + " → " + orDash(v.filter.To.String()))
	if v.focus == focusFrom || v.focus == focusTo {
		dates = v.fromInput.View() + " " + v.toInput.View()
	}

	bar := s.FilterBar.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		s.FilterLabel.Render("Search "), search,
		s.FilterLabel.Render("  Assignee "), s.FilterValue.Render(selection(v.filter.Assignee)),
		s.FilterLabel.Render("Priority "), s.FilterValue.Render(selection(v.filter.Priority)),
		s.FilterLabel.Render("Due "), dates,
	))

	body := v.table.View()
	if len(v.rows) == 0 {
		body = s.TitleMuted.Render("No completed tasks match the filters")
	}

	lines := []string{
		bar,
		s.ColumnTitle.Render(fmt.Sprintf("Completed (%d)", len(v.rows))),
		body,
	}
	if v.err != "" {
		lines = append(lines, s.ErrorText.Render(v.err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
