package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flightly/internal/state"
)

// renderHeader renders the logo bar with the navigation affordance. The
// affordance reads "Profile" everywhere except on the profile screen, where
// it offers the way back to search.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	navStyle := styles.Logo.Bold(false)

	left := bg.Render("✈ Flightly", styles.Logo)

	var right string
	if m.nav.Screen() == state.ScreenProfile {
		right = bg.Render("[esc] Search", navStyle)
	} else {
		right = bg.Render("[ctrl+p] Profile", navStyle)
	}
	if m.nav.Roulette().Spinning {
		right = bg.Render("spinning…", styles.WarningText) + bg.Spaces(2) + right
	}

	width := m.width
	if width <= 0 {
		width = CardMaxWidth
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return styles.Header.Render(bg.FillLine(left+bg.Spaces(gap)+right, width-2))
}

// renderCommandBar lists the keys valid on the current screen.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	var hints [][2]string
	switch m.nav.Screen() {
	case state.ScreenHome:
		escHint := "clear"
		if m.nav.Roulette().Spinning {
			escHint = "cancel spin"
		}
		hints = [][2]string{
			{"tab", "next"},
			{"enter", "search"},
			{"ctrl+r", "roulette"},
			{"esc", escHint},
			{"f1", "help"},
			{"ctrl+c", "quit"},
		}
	case state.ScreenResults:
		hints = [][2]string{
			{"j/k", "select"},
			{"enter", "book"},
			{"b", "back"},
			{"p", "profile"},
			{"?", "help"},
			{"q", "quit"},
		}
	case state.ScreenProfile:
		hints = [][2]string{
			{"b", "back to search"},
			{"?", "help"},
			{"q", "quit"},
		}
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, styles.AccentText.Render("<"+h[0]+">")+" "+styles.MutedText.Render(h[1]))
	}
	return styles.Footer.Render(truncateRendered(strings.Join(parts, "  "), m.width))
}

// truncateRendered keeps a styled line within width cells.
func truncateRendered(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
