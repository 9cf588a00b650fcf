package ui_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/dgboard/internal/board"
	"github.com/tgienger/dgboard/internal/models"
	"github.com/tgienger/dgboard/internal/projection"
	"github.com/tgienger/dgboard/internal/store"
	"github.com/tgienger/dgboard/internal/tasks"
	"github.com/tgienger/dgboard/internal/ui"
	"github.com/tgienger/dgboard/internal/ui/views"
)

var today = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type memPrefs struct {
	theme models.Theme
	fail  bool
	saved []models.Theme
}

func (p *memPrefs) Theme() models.Theme { return p.theme }

func (p *memPrefs) SetTheme(t models.Theme) error {
	if p.fail {
		return errors.New("disk full")
	}
	p.theme = t
	p.saved = append(p.saved, t)
	return nil
}

type harness struct {
	t     *testing.T
	app   *ui.App
	repo  *tasks.Repository
	prefs *memPrefs
	quit  bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	clock := today
	now := func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	repo := tasks.NewRepositoryWith(nil, now, ids)
	repo.Replace(store.Seed(today, ids))

	h := &harness{t: t, repo: repo, prefs: &memPrefs{theme: models.ThemeDark}}
	h.app = ui.NewApp(repo, h.prefs, nil)
	h.send(tea.WindowSizeMsg{Width: 160, Height: 50})
	h.run(h.app.Init())
	return h
}

// send delivers msg and the app messages its commands produce. Commands
// that block, like cursor blink timers, are dropped.
func (h *harness) send(msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		_, cmd := h.app.Update(m)
		queue = append(queue, h.collect(cmd)...)
	}
}

func (h *harness) run(cmd tea.Cmd) {
	for _, m := range h.collect(cmd) {
		h.send(m)
	}
}

func (h *harness) collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var result tea.Msg
	select {
	case result = <-done:
	case <-time.After(50 * time.Millisecond):
		return nil
	}

	switch msg := result.(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, h.collect(c)...)
		}
		return out
	case tea.QuitMsg:
		h.quit = true
	case views.TasksChanged, views.OpenEditor, views.SubmitForm, views.CancelForm:
		return []tea.Msg{msg}
	}
	return nil
}

func (h *harness) press(keys ...tea.KeyType) {
	for _, k := range keys {
		h.send(tea.KeyMsg{Type: k})
	}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) find(title string) models.Task {
	h.t.Helper()
	for _, task := range h.repo.List() {
		if task.Title == title {
			return task
		}
	}
	h.t.Fatalf("no task titled %q", title)
	return models.Task{}
}

func TestApp_InitShowsSeedMetrics(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, projection.Metrics{Total: 4, InProgress: 1, Review: 1, Done: 1}, h.app.Metrics())
	assert.Equal(t, ui.ViewBoard, h.app.CurrentView())

	selected, ok := h.app.Board().Selected()
	require.True(t, ok)
	assert.Equal(t, "Stakeholder dashboard", selected.Title)
	assert.Contains(t, h.app.View(), "Stakeholder dashboard")
}

func TestApp_MoveCardRight(t *testing.T) {
	h := newHarness(t)
	id := h.find("Stakeholder dashboard").ID

	h.typeText("L")

	moved, err := h.repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, moved.Status)
	assert.Equal(t, projection.Metrics{Total: 4, InProgress: 2, Review: 1, Done: 1}, h.app.Metrics())

	// The moved card stays selected in its new column
	assert.Equal(t, models.StatusInProgress, h.app.Board().Focus())
	selected, ok := h.app.Board().Selected()
	require.True(t, ok)
	assert.Equal(t, id, selected.ID)

	h.press(tea.KeyShiftRight, tea.KeyShiftRight)
	moved, err = h.repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, moved.Status)
}

func TestApp_MoveAtEdgeIsNoop(t *testing.T) {
	h := newHarness(t)
	before := h.repo.List()

	h.typeText("H")

	assert.Equal(t, before, h.repo.List())
}

func TestApp_CreateTask(t *testing.T) {
	h := newHarness(t)

	h.typeText("n")
	require.Equal(t, board.Creating, h.app.Editor().State())
	assert.Contains(t, h.app.View(), "New Task")

	h.typeText("Write release notes")
	// title -> description -> assignee
	h.press(tea.KeyTab, tea.KeyTab, tea.KeyRight)
	h.press(tea.KeyCtrlS)

	assert.Equal(t, board.Closed, h.app.Editor().State())
	require.Equal(t, 5, h.repo.Len())

	created := h.repo.List()[0]
	assert.Equal(t, "Write release notes", created.Title)
	assert.Equal(t, models.Assignee("Ishaan"), created.Assignee)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.Equal(t, models.StatusBacklog, created.Status)
	assert.Equal(t, 4.0, created.EstimateHours)
	assert.Equal(t, []string{}, created.Tags)
	assert.Equal(t, 5, h.app.Metrics().Total)
}

func TestApp_CreateRequiresTitle(t *testing.T) {
	h := newHarness(t)

	h.typeText("n")
	h.typeText("   ")
	h.press(tea.KeyCtrlS)

	assert.Equal(t, board.Creating, h.app.Editor().State())
	assert.Equal(t, "Title is required", h.app.Form().Err())
	assert.Equal(t, 4, h.repo.Len())

	h.press(tea.KeyEsc)
	assert.Equal(t, board.Closed, h.app.Editor().State())
	assert.Equal(t, 4, h.repo.Len())
}

func TestApp_EditTask(t *testing.T) {
	h := newHarness(t)
	original := h.find("Setup project foundation")

	h.typeText("l")
	h.typeText("e")
	require.Equal(t, board.Editing, h.app.Editor().State())
	assert.Equal(t, original.ID, h.app.Editor().TaskID())

	form := h.app.Form().Values()
	assert.Equal(t, original.Title, form.Title)
	assert.Equal(t, "infra, ui", form.Tags)

	h.typeText(" v2")
	h.press(tea.KeyCtrlS)

	assert.Equal(t, board.Closed, h.app.Editor().State())
	edited, err := h.repo.Get(original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Setup project foundation v2", edited.Title)
	assert.Equal(t, original.Tags, edited.Tags)
	assert.Equal(t, original.CreatedAt, edited.CreatedAt)
	assert.False(t, edited.UpdatedAt.Before(original.UpdatedAt))
}

func TestApp_EditInvalidDateKeepsFormOpen(t *testing.T) {
	h := newHarness(t)

	h.typeText("e")
	// title, description, assignee, priority, status, start
	h.press(tea.KeyTab, tea.KeyTab, tea.KeyTab, tea.KeyTab, tea.KeyTab)
	h.typeText("June 3rd")
	h.press(tea.KeyCtrlS)

	assert.Equal(t, board.Editing, h.app.Editor().State())
	assert.Equal(t, "Invalid startDate", h.app.Form().Err())
}

func TestApp_ThemeToggle(t *testing.T) {
	h := newHarness(t)

	h.typeText("t")
	assert.Equal(t, models.ThemeLight, h.app.Theme())
	assert.Equal(t, []models.Theme{models.ThemeLight}, h.prefs.saved)
	assert.Contains(t, h.app.View(), "Daylight")

	h.typeText("t")
	assert.Equal(t, models.ThemeDark, h.app.Theme())
	assert.Equal(t, []models.Theme{models.ThemeLight, models.ThemeDark}, h.prefs.saved)
}

func TestApp_ThemeToggleSurvivesSaveFailure(t *testing.T) {
	h := newHarness(t)
	h.prefs.fail = true

	h.typeText("t")
	assert.Equal(t, models.ThemeLight, h.app.Theme())
	assert.Empty(t, h.prefs.saved)
}

func TestApp_SearchCapturesKeys(t *testing.T) {
	h := newHarness(t)

	h.typeText("/")
	require.True(t, h.app.Board().Typing())
	h.typeText("quality")
	assert.False(t, h.quit)
	assert.Equal(t, "quality", h.app.Board().Filter().Query)

	h.press(tea.KeyEsc)
	assert.False(t, h.app.Board().Typing())

	h.typeText("q")
	assert.True(t, h.quit)
}

func TestApp_AssigneeFilter(t *testing.T) {
	h := newHarness(t)

	// All -> Aarav
	h.typeText("a")
	assert.Equal(t, "Aarav", h.app.Board().Filter().Assignee)
	_, ok := h.app.Board().Selected()
	assert.False(t, ok, "Aarav has nothing in Backlog")

	h.typeText("x")
	assert.False(t, h.app.Board().Filter().Active())
}

func TestApp_CompletedView(t *testing.T) {
	h := newHarness(t)

	h.typeText("c")
	require.Equal(t, ui.ViewCompleted, h.app.CurrentView())
	require.Len(t, h.app.Completed().Rows(), 1)
	assert.Equal(t, "API contracts", h.app.Completed().Rows()[0].Title)

	// Due date range that excludes today
	h.typeText("d")
	h.typeText("2025-06-02")
	h.press(tea.KeyEnter)
	assert.Empty(t, h.app.Completed().Rows())
	assert.Equal(t, models.NewDate(2025, time.June, 2), h.app.Completed().Filter().From)

	h.typeText("x")
	assert.Len(t, h.app.Completed().Rows(), 1)

	h.typeText("c")
	assert.Equal(t, ui.ViewBoard, h.app.CurrentView())
}

func TestApp_CompletedBadDateKeepsFilter(t *testing.T) {
	h := newHarness(t)

	h.typeText("c")
	h.typeText("d")
	h.typeText("soon")
	h.press(tea.KeyEnter)

	assert.True(t, h.app.Completed().Typing())
	assert.True(t, h.app.Completed().Filter().From.IsZero())
	assert.Len(t, h.app.Completed().Rows(), 1)
}

func TestApp_HelpPopup(t *testing.T) {
	h := newHarness(t)

	h.typeText("?")
	assert.Contains(t, h.app.View(), "Keyboard Shortcuts")

	// Any key closes it without acting
	h.typeText("n")
	assert.Equal(t, board.Closed, h.app.Editor().State())
	assert.NotContains(t, h.app.View(), "Keyboard Shortcuts")
}
