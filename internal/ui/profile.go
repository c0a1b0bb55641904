package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flightly/internal/currency"
)

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Search) {
		return m.goHome()
	}
	return m, nil
}

// renderProfile renders the loyalty card.
func (m Model) renderProfile() string {
	styles := m.theme.Styles()
	user := m.catalog.Profile()
	pct := clampInt(user.Progress, 0, 100)

	bar := progress.New(
		progress.WithSolidFill(m.theme.Highlight),
		progress.WithWidth(ProgressBarWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = m.theme.Faint

	var b strings.Builder
	b.WriteString(styles.Title.Render(user.Name))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Tier: "))
	b.WriteString(styles.Text.Bold(true).Render(user.Tier))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Points: "))
	b.WriteString(styles.Text.Bold(true).Render(currency.FormatPoints(user.Points)))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Next Tier Progress:"))
	b.WriteString("\n")
	b.WriteString(bar.ViewAs(float64(pct) / 100))
	b.WriteString(" ")
	b.WriteString(styles.HighlightText.Render(fmt.Sprintf("%d%%", pct)))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("← Back to Search (b)"))

	return b.String()
}
