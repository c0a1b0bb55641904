package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header bar

	// Selection colors
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text      string
	Muted     string
	Faint     string
	Accent    string
	Highlight string // prices, deals, the focused button
	Success   string
	Warning   string
	Danger    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		HighlightText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Highlight)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Highlight)).
			Bold(true).
			MarginBottom(1),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectionText)).
			Background(lipgloss.Color(t.Highlight)).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 2),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Faint)).
			Padding(0, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text          lipgloss.Style
	MutedText     lipgloss.Style
	FaintText     lipgloss.Style
	AccentText    lipgloss.Style
	HighlightText lipgloss.Style
	SuccessText   lipgloss.Style
	WarningText   lipgloss.Style
	DangerText    lipgloss.Style
	Title         lipgloss.Style

	// Components
	Header         lipgloss.Style
	Footer         lipgloss.Style
	Logo           lipgloss.Style
	Card           lipgloss.Style
	Selected       lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Flightly": flightlyTheme(),
	"Dracula":  draculaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Flightly", "Dracula", "Slate"}

// GetTheme returns a theme by name, falling back to Flightly.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return flightlyTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func flightlyTheme() Theme {
	// Brand palette: indigo header, pink call-to-action.
	return Theme{
		Name: "Flightly",

		Background: "#0B1230",
		Surface:    "#6157E1", // indigo header

		SelectionBg:   "#6157E1",
		SelectionText: "#FFFFFF",

		Border:      "#BCB9DB",
		BorderFocus: "#EC4186",

		Text:      "#E7E7FB",
		Muted:     "#BCB9DB",
		Faint:     "#5A5F8A",
		Accent:    "#8F87F0",
		Highlight: "#EC4186", // pink
		Success:   "#5FD7A0",
		Warning:   "#FFF9C3",
		Danger:    "#FF5C7A",
	}
}

func draculaTheme() Theme {
	// Official Dracula palette: https://draculatheme.com/spec
	return Theme{
		Name: "Dracula",

		Background: "#191A21", // BGDarker
		Surface:    "#44475A", // Selection

		SelectionBg:   "#44475A",
		SelectionText: "#F8F8F2",

		Border:      "#6272A4", // Comment
		BorderFocus: "#BD93F9", // Purple

		Text:      "#F8F8F2", // Foreground
		Muted:     "#6272A4", // Comment
		Faint:     "#44475A",
		Accent:    "#BD93F9", // Purple
		Highlight: "#FF79C6", // Pink
		Success:   "#50FA7B", // Green
		Warning:   "#FFB86C", // Orange
		Danger:    "#FF5555", // Red
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:      "#f1f5f9", // slate-100
		Muted:     "#94a3b8", // slate-400
		Faint:     "#64748b", // slate-500
		Accent:    "#38bdf8", // sky-400
		Highlight: "#ec4899", // pink-500
		Success:   "#22c55e", // green-500
		Warning:   "#f59e0b", // amber-500
		Danger:    "#ef4444", // red-500
	}
}
