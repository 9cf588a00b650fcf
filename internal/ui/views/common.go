package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/dgboard/internal/board"
	"github.com/tgienger/dgboard/internal/models"
	"github.com/tgienger/dgboard/internal/projection"
	"github.com/tgienger/dgboard/internal/ui/styles"
)

// Repository is what the views read from and mutate
type Repository interface {
	board.Repository
	List() []models.Task
}

// TasksChanged carries a fresh snapshot to every view
type TasksChanged struct {
	Tasks []models.Task
}

// OpenEditor asks the app to open the task form. A nil Task means a new one.
type OpenEditor struct {
	Task *models.Task
}

// SubmitForm and CancelForm close the task form
type (
	SubmitForm struct{}
	CancelForm struct{}
)

// Reload reads the repository and announces the snapshot
func Reload(repo Repository) tea.Cmd {
	return func() tea.Msg {
		return TasksChanged{Tasks: repo.List()}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// cycle returns the option after current, wrapping around
func cycle(options []string, current string, dir int) string {
	if len(options) == 0 {
		return current
	}
	for i, o := range options {
		if o == current {
			return options[(i+dir+len(options))%len(options)]
		}
	}
	return options[0]
}

func assigneeOptions(roster []models.Assignee) []string {
	out := []string{projection.All}
	for _, a := range roster {
		out = append(out, string(a))
	}
	return out
}

func priorityOptions() []string {
	out := []string{projection.All}
	for _, p := range models.Priorities {
		out = append(out, string(p))
	}
	return out
}

func selection(s string) string {
	if s == "" {
		return projection.All
	}
	return s
}

// RenderMetrics draws the four summary cards
func RenderMetrics(s *styles.Styles, m projection.Metrics) string {
	card := func(label string, value int) string {
		return s.Metric.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.MetricLabel.Render(label),
			s.MetricValue.Render(fmt.Sprintf("%d", value)),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total", m.Total),
		card("In Progress", m.InProgress),
		card("Review", m.Review),
		card("Done", m.Done),
	)
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if len(r) > width-1 {
		r = r[:width-1]
	}
	return string(r) + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
