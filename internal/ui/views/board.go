package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/dgboard/internal/board"
	"github.com/tgienger/dgboard/internal/models"
	"github.com/tgienger/dgboard/internal/projection"
	"github.com/tgienger/dgboard/internal/ui/keys"
	"github.com/tgienger/dgboard/internal/ui/styles"
)

// BoardView shows the four status columns
type BoardView struct {
	repo   Repository
	styles *styles.Styles
	keys   keys.KeyMap

	tasks  []models.Task
	cols   projection.Columns
	filter projection.Filter

	focus  int
	cursor [4]int
	// Card to keep selected once the next snapshot arrives
	follow string

	searchInput textinput.Model
	searching   bool

	status string
	width  int
	height int
}

func NewBoardView(repo Repository, s *styles.Styles) *BoardView {
	search := textinput.New()
	search.Placeholder = "Search title or description..."
	search.CharLimit = 100

	return &BoardView{
		repo:        repo,
		styles:      s,
		keys:        keys.DefaultKeyMap(),
		searchInput: search,
	}
}

func (v *BoardView) Init() tea.Cmd {
	return Reload(v.repo)
}

// Typing reports whether keystrokes belong to the search box
func (v *BoardView) Typing() bool { return v.searching }

// Filter returns the active board filter
func (v *BoardView) Filter() projection.Filter { return v.filter }

// Focus is the focused column's status
func (v *BoardView) Focus() models.Status { return models.Statuses[v.focus] }

// Selected returns the card under the cursor of the focused column
func (v *BoardView) Selected() (models.Task, bool) {
	col := v.cols.Column(v.Focus())
	if len(col) == 0 {
		return models.Task{}, false
	}
	return col[clamp(v.cursor[v.focus], 0, len(col)-1)], true
}

// Follow keeps the card with id selected once the next snapshot arrives
func (v *BoardView) Follow(id string) { v.follow = id }

// SetTasks installs a new snapshot and regroups the board
func (v *BoardView) SetTasks(tasks []models.Task) {
	v.tasks = tasks
	v.regroup()
}

func (v *BoardView) regroup() {
	v.cols = projection.Board(v.tasks, v.filter)

	if v.follow != "" {
		for i, s := range models.Statuses {
			for j, t := range v.cols.Column(s) {
				if t.ID == v.follow {
					v.focus = i
					v.cursor[i] = j
				}
			}
		}
		v.follow = ""
	}

	for i, s := range models.Statuses {
		v.cursor[i] = clamp(v.cursor[i], 0, max(len(v.cols.Column(s))-1, 0))
	}
}

func (v *BoardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.searchInput.Width = clamp(styles.ContentWidth(v.width)/3, 10, 40)
		return v, nil

	case TasksChanged:
		v.SetTasks(msg.Tasks)
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *BoardView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Enter):
		v.searching = false
		v.searchInput.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.searchInput, cmd = v.searchInput.Update(msg)
	v.filter.Query = v.searchInput.Value()
	v.regroup()
	return v, cmd
}

func (v *BoardView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.status = ""

	switch {
	case key.Matches(msg, v.keys.MoveLeft):
		return v, v.move(-1)

	case key.Matches(msg, v.keys.MoveRight):
		return v, v.move(1)

	case key.Matches(msg, v.keys.Left):
		v.focus = clamp(v.focus-1, 0, len(models.Statuses)-1)

	case key.Matches(msg, v.keys.Right):
		v.focus = clamp(v.focus+1, 0, len(models.Statuses)-1)

	case key.Matches(msg, v.keys.Up):
		if v.cursor[v.focus] > 0 {
			v.cursor[v.focus]--
		}

	case key.Matches(msg, v.keys.Down):
		if v.cursor[v.focus] < len(v.cols.Column(v.Focus()))-1 {
			v.cursor[v.focus]++
		}

	case key.Matches(msg, v.keys.New):
		return v, emit(OpenEditor{})

	case key.Matches(msg, v.keys.Edit), key.Matches(msg, v.keys.Enter):
		if t, ok := v.Selected(); ok {
			return v, emit(OpenEditor{Task: &t})
		}

	case key.Matches(msg, v.keys.Search):
		v.searching = true
		v.searchInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Assignee):
		v.filter.Assignee = cycle(assigneeOptions(models.Roster), selection(v.filter.Assignee), 1)
		v.regroup()

	case key.Matches(msg, v.keys.Priority):
		v.filter.Priority = cycle(priorityOptions(), selection(v.filter.Priority), 1)
		v.regroup()

	case key.Matches(msg, v.keys.Clear):
		v.filter = projection.Filter{}
		v.searchInput.SetValue("")
		v.regroup()
	}
	return v, nil
}

// move drags the selected card one column over and drops it there
func (v *BoardView) move(dir int) tea.Cmd {
	t, ok := v.Selected()
	if !ok {
		return nil
	}
	target, ok := board.Neighbor(t.Status, dir)
	if !ok {
		return nil
	}
	if !board.Drop(v.repo, t.ID, target) {
		v.status = fmt.Sprintf("could not move %q", t.Title)
		return Reload(v.repo)
	}
	v.follow = t.ID
	return Reload(v.repo)
}

func (v *BoardView) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		v.renderFilterBar(),
		v.renderColumns(),
		v.renderStatus(),
	)
}

func (v *BoardView) renderFilterBar() string {
	s := v.styles

	search := s.FilterValue.Render(orDash(v.filter.Query))
	if v.searching {
		search = v.searchInput.View()
	}

	return s.FilterBar.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		s.FilterLabel.Render("Search "), search,
		s.FilterLabel.Render("  Assignee "), s.FilterValue.Render(selection(v.filter.Assignee)),
		s.FilterLabel.Render("Priority "), s.FilterValue.Render(selection(v.filter.Priority)),
	))
}

func (v *BoardView) renderColumns() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	colWidth := max(contentWidth/len(models.Statuses)-2, 16)

	// metrics, filter bar, status line and help take roughly this much
	visible := max((v.height-16)/4, 1)

	cols := make([]string, 0, len(models.Statuses))
	for i, status := range models.Statuses {
		tasks := v.cols.Column(status)

		start := 0
		if v.cursor[i] >= visible {
			start = v.cursor[i] - visible + 1
		}
		end := min(start+visible, len(tasks))

		lines := []string{s.ColumnTitle.Render(fmt.Sprintf("%s (%d)", status, len(tasks)))}
		for j := start; j < end; j++ {
			lines = append(lines, v.renderCard(tasks[j], i == v.focus && j == v.cursor[i], colWidth-4))
		}
		if len(tasks) == 0 {
			lines = append(lines, s.TitleMuted.Render("No tasks"))
		} else if end < len(tasks) {
			lines = append(lines, s.TitleMuted.Render(fmt.Sprintf("+%d more", len(tasks)-end)))
		}

		style := s.Column
		if i == v.focus {
			style = s.ColumnFocused
		}
		cols = append(cols, style.Width(colWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (v *BoardView) renderCard(t models.Task, selected bool, width int) string {
	s := v.styles

	meta := s.Priority(t.Priority).Render(string(t.Priority)) + s.CardMeta.Render(" · "+string(t.Assignee))
	lines := []string{s.CardTitle.Render(truncate(t.Title, width)), meta}

	var dates []string
	if !t.StartDate.IsZero() {
		dates = append(dates, "start "+t.StartDate.String())
	}
	if !t.DueDate.IsZero() {
		dates = append(dates, "due "+t.DueDate.String())
	}
	if t.EstimateHours > 0 {
		dates = append(dates, fmt.Sprintf("%gh", t.EstimateHours))
	}
	if len(dates) > 0 {
		lines = append(lines, s.CardMeta.Render(truncate(strings.Join(dates, " "), width)))
	}

	if len(t.Tags) > 0 {
		tags := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = "#" + tag
		}
		lines = append(lines, s.Tag.Render(truncate(strings.Join(tags, " "), width)))
	}

	style := s.Card
	if selected {
		style = s.CardSelected
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (v *BoardView) renderStatus() string {
	if v.status == "" {
		return ""
	}
	return v.styles.ErrorText.Render(v.status)
}
