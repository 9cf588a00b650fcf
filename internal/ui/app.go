package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/dgboard/internal/board"
	"github.com/tgienger/dgboard/internal/models"
	"github.com/tgienger/dgboard/internal/projection"
	"github.com/tgienger/dgboard/internal/ui/keys"
	"github.com/tgienger/dgboard/internal/ui/styles"
	"github.com/tgienger/dgboard/internal/ui/views"
	"go.uber.org/zap"
)

// Currently active view
type View int

const (
	ViewBoard View = iota
	ViewCompleted
)

// Prefs persists the theme preference
type Prefs interface {
	Theme() models.Theme
	SetTheme(models.Theme) error
}

type App struct {
	repo  views.Repository
	prefs Prefs
	log   *zap.Logger

	theme  models.Theme
	styles *styles.Styles
	keys   keys.KeyMap
	help   help.Model

	currentView View
	board       *views.BoardView
	completed   *views.CompletedView
	form        *views.FormView
	editor      board.Editor

	metrics  projection.Metrics
	showHelp bool
	width    int
	height   int
}

// Creates a new application
func NewApp(repo views.Repository, prefs Prefs, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	theme := prefs.Theme()
	s := styles.NewStyles(styles.For(theme))

	a := &App{
		repo:      repo,
		prefs:     prefs,
		log:       log,
		theme:     theme,
		styles:    s,
		keys:      keys.DefaultKeyMap(),
		help:      help.New(),
		board:     views.NewBoardView(repo, s),
		completed: views.NewCompletedView(s),
		form:      views.NewFormView(s),
	}
	a.restyleHelp()
	return a
}

func (a *App) Init() tea.Cmd {
	return a.board.Init()
}

// CurrentView is the view receiving keys when the form is closed
func (a *App) CurrentView() View { return a.currentView }

// Theme is the active theme
func (a *App) Theme() models.Theme { return a.theme }

// Editor exposes the create/edit session
func (a *App) Editor() *board.Editor { return &a.editor }

func (a *App) Board() *views.BoardView         { return a.board }
func (a *App) Completed() *views.CompletedView { return a.completed }
func (a *App) Form() *views.FormView           { return a.form }
func (a *App) Metrics() projection.Metrics     { return a.metrics }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = styles.ContentWidth(msg.Width)
		a.board.Update(msg)
		a.completed.Update(msg)
		a.form.Update(msg)
		return a, nil

	case views.TasksChanged:
		a.metrics = projection.Summarize(msg.Tasks)
		a.board.Update(msg)
		a.completed.Update(msg)
		return a, nil

	case views.OpenEditor:
		return a, a.openEditor(msg.Task)

	case views.SubmitForm:
		return a, a.submit()

	case views.CancelForm:
		a.editor.Cancel()
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}
	return a, nil
}

func (a *App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}
	if a.editor.State() != board.Closed {
		_, cmd := a.form.Update(msg)
		return a, cmd
	}

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if !a.typing() {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Theme):
			a.toggleTheme()
			return a, nil
		case key.Matches(msg, a.keys.Help):
			a.showHelp = true
			return a, nil
		case key.Matches(msg, a.keys.SwitchView):
			a.switchView()
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewBoard:
		_, cmd = a.board.Update(msg)
	case ViewCompleted:
		_, cmd = a.completed.Update(msg)
	}
	return a, cmd
}

func (a *App) switchView() {
	if a.currentView == ViewBoard {
		a.currentView = ViewCompleted
	} else {
		a.currentView = ViewBoard
	}
}

// typing reports whether the active view has a focused text input
func (a *App) typing() bool {
	if a.currentView == ViewCompleted {
		return a.completed.Typing()
	}
	return a.board.Typing()
}

func (a *App) openEditor(task *models.Task) tea.Cmd {
	var (
		f  board.Form
		ok bool
	)
	if task == nil {
		f, ok = a.editor.Open()
	} else {
		f, ok = a.editor.Edit(*task)
	}
	if !ok {
		return nil
	}
	return a.form.Load(f, task == nil)
}

func (a *App) submit() tea.Cmd {
	task, err := a.editor.Submit(a.repo, a.form.Values())
	if err != nil {
		a.log.Debug("task form rejected", zap.Error(err))
		a.form.SetError(err)
		return nil
	}
	a.board.Follow(task.ID)
	return views.Reload(a.repo)
}

func (a *App) toggleTheme() {
	a.theme = a.theme.Toggle()
	*a.styles = *styles.NewStyles(styles.For(a.theme))
	a.completed.Restyle()
	a.restyleHelp()

	if err := a.prefs.SetTheme(a.theme); err != nil {
		a.log.Warn("theme not persisted", zap.Error(err), zap.String("theme", string(a.theme)))
	}
}

func (a *App) restyleHelp() {
	a.help.Styles.ShortKey = a.styles.HelpKey
	a.help.Styles.ShortDesc = a.styles.HelpDesc
	a.help.Styles.ShortSeparator = a.styles.HelpDesc
	a.help.Styles.FullKey = a.styles.HelpKey
	a.help.Styles.FullDesc = a.styles.HelpDesc
	a.help.Styles.FullSeparator = a.styles.HelpDesc
}

func (a *App) View() string {
	if a.editor.State() != board.Closed {
		return a.form.View()
	}

	s := a.styles
	contentWidth := styles.ContentWidth(a.width)

	if a.showHelp {
		content := lipgloss.JoinVertical(lipgloss.Left,
			s.Title.Render("Keyboard Shortcuts"),
			"",
			a.help.FullHelpView(a.keys.FullHelp()),
			"",
			s.TitleMuted.Render("Press any key to close"),
		)
		centered := lipgloss.Place(contentWidth, a.height,
			lipgloss.Center, lipgloss.Center,
			s.FilterBar.Render(content),
		)
		return styles.CenterView(centered, a.width, a.height)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		s.Title.Render("dgboard"),
		s.TitleMuted.Render("  "+a.styles.Theme.Name),
	)

	body := a.board.View()
	bindings := a.keys.BoardHelp()
	if a.currentView == ViewCompleted {
		body = a.completed.View()
		bindings = a.keys.CompletedHelp()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		views.RenderMetrics(s, a.metrics),
		body,
		s.Help.Render(a.help.ShortHelpView(bindings)),
	)
	return styles.CenterView(content, a.width, a.height)
}
