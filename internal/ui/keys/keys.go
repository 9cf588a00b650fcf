package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the views react to
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Pick up the selected card and drop it one column over
	MoveLeft  key.Binding
	MoveRight key.Binding

	New     key.Binding
	Edit    key.Binding
	Enter   key.Binding
	Save    key.Binding
	Back    key.Binding
	Tab     key.Binding
	BackTab key.Binding
	Cycle   key.Binding

	Search   key.Binding
	Assignee key.Binding
	Priority key.Binding
	Dates    key.Binding
	Clear    key.Binding

	SwitchView key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "column left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "column right"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("shift+left", "H", "<"),
			key.WithHelp("H", "move card left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("shift+right", "L", ">"),
			key.WithHelp("L", "move card right"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "select"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		BackTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "change"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Assignee: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "assignee"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "priority"),
		),
		Dates: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "due range"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "board/completed"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BoardHelp is the short help line for the board
func (k KeyMap) BoardHelp() []key.Binding {
	return []key.Binding{k.Left, k.Down, k.MoveRight, k.New, k.Edit, k.Search, k.Assignee, k.Priority, k.SwitchView, k.Theme, k.Help, k.Quit}
}

// CompletedHelp is the short help line for the completed view
func (k KeyMap) CompletedHelp() []key.Binding {
	return []key.Binding{k.Down, k.Search, k.Assignee, k.Priority, k.Dates, k.Clear, k.SwitchView, k.Theme, k.Help, k.Quit}
}

// FormHelp is the short help line for the edit form
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Cycle, k.Save, k.Back}
}

// FullHelp groups bindings for the help popup
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.MoveLeft, k.MoveRight},
		{k.New, k.Edit, k.Enter, k.Save, k.Back},
		{k.Search, k.Assignee, k.Priority, k.Dates, k.Clear},
		{k.SwitchView, k.Theme, k.Help, k.Quit},
	}
}
