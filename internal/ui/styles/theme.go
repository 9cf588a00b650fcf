package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/dgboard/internal/models"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// Neon is the dark theme
var Neon = Theme{
	Name: "Neon",

	Background:    lipgloss.Color("#0a0a0f"),
	Foreground:    lipgloss.Color("#e5e7eb"),
	ForegroundDim: lipgloss.Color("#6b7280"),

	Primary:   lipgloss.Color("#22d3ee"),
	Secondary: lipgloss.Color("#d946ef"),
	Accent:    lipgloss.Color("#38bdf8"),

	Success: lipgloss.Color("#10b981"),
	Warning: lipgloss.Color("#f59e0b"),
	Error:   lipgloss.Color("#ef4444"),
	Info:    lipgloss.Color("#22d3ee"),

	Border:      lipgloss.Color("#27272a"),
	BorderFocus: lipgloss.Color("#d946ef"),
	Selection:   lipgloss.Color("#1e293b"),
}

// Daylight is the light theme
var Daylight = Theme{
	Name: "Daylight",

	Background:    lipgloss.Color("#ffffff"),
	Foreground:    lipgloss.Color("#111827"),
	ForegroundDim: lipgloss.Color("#6b7280"),

	Primary:   lipgloss.Color("#0891b2"),
	Secondary: lipgloss.Color("#a21caf"),
	Accent:    lipgloss.Color("#0284c7"),

	Success: lipgloss.Color("#047857"),
	Warning: lipgloss.Color("#b45309"),
	Error:   lipgloss.Color("#b91c1c"),
	Info:    lipgloss.Color("#0891b2"),

	Border:      lipgloss.Color("#d1d5db"),
	BorderFocus: lipgloss.Color("#a21caf"),
	Selection:   lipgloss.Color("#e0f2fe"),
}

// For returns the color scheme for a persisted theme preference
func For(t models.Theme) Theme {
	if t == models.ThemeLight {
		return Daylight
	}
	return Neon
}

// MaxWidth caps the board width on very wide terminals
const MaxWidth = 140

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	Theme Theme

	// Title bar
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Metric cards
	Metric      lipgloss.Style
	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style

	// Board columns and cards
	Column        lipgloss.Style
	ColumnFocused lipgloss.Style
	ColumnTitle   lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardTitle     lipgloss.Style
	CardMeta      lipgloss.Style
	Tag           lipgloss.Style

	// Filter bar
	FilterBar   lipgloss.Style
	FilterLabel lipgloss.Style
	FilterValue lipgloss.Style

	// Lists
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Input fields
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	ErrorText    lipgloss.Style

	// Help text
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style
}

// NewStyles creates styles for the given theme
func NewStyles(t Theme) *Styles {
	return &Styles{
		Theme: t,

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Metric: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2).
			MarginRight(1),

		MetricLabel: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		MetricValue: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		ColumnFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		ColumnTitle: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			PaddingLeft(1).
			MarginBottom(1),

		CardSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(t.Primary).
			PaddingLeft(1).
			MarginBottom(1),

		CardTitle: lipgloss.NewStyle().
			Bold(true),

		CardMeta: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Tag: lipgloss.NewStyle().
			Foreground(t.Secondary).
			MarginRight(1),

		FilterBar: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		FilterLabel: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		FilterValue: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true).
			MarginRight(2),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 2).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		ErrorText: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1),
	}
}

// Priority returns the badge style for a priority
func (s *Styles) Priority(p models.Priority) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch p {
	case models.PriorityCritical:
		return base.Foreground(s.Theme.Error)
	case models.PriorityHigh:
		return base.Foreground(s.Theme.Warning)
	case models.PriorityMedium:
		return base.Foreground(s.Theme.Info)
	default:
		return base.Foreground(s.Theme.Success)
	}
}
