package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
//
// The home screen is a text form, so its bindings use control keys; the
// other screens also accept plain letters.
type keyMap struct {
	// Global
	Quit       key.Binding
	QuitLetter key.Binding
	Help       key.Binding
	HelpLetter key.Binding
	CycleTheme key.Binding
	Home       key.Binding
	Profile    key.Binding

	// Home screen
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Roulette  key.Binding

	// Results and profile screens
	Up            key.Binding
	Down          key.Binding
	Book          key.Binding
	Back          key.Binding
	ProfileLetter key.Binding
	Search        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		QuitLetter: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Toggle help"),
		),
		HelpLetter: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle theme"),
		),
		Home: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to search"),
		),
		Profile: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "Profile"),
		),

		// Home screen
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Search flights"),
		),
		Roulette: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Travel roulette"),
		),

		// Results and profile screens
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Previous flight"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Next flight"),
		),
		Book: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Book flight"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "Back to search"),
		),
		ProfileLetter: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Profile"),
		),
		Search: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Search"),
		),
	}
}
