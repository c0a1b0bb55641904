package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flightly/internal/currency"
)

// handleHomeKey processes keyboard input for the search screen.
func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m.moveHomeFocus(1)

	case key.Matches(msg, m.keys.PrevField):
		return m.moveHomeFocus(-1)

	case key.Matches(msg, m.keys.Roulette):
		return m.startRoulette()

	case key.Matches(msg, m.keys.Submit):
		if m.homeFocus == focusRoulette {
			return m.startRoulette()
		}
		return m.submitSearch()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) moveHomeFocus(delta int) (tea.Model, tea.Cmd) {
	m.homeFocus = (m.homeFocus + delta + focusCount) % focusCount
	cmd := m.form.focus(m.homeFocus)
	return m, cmd
}

// submitSearch validates the form and commits the criteria.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	criteria, slot, err := m.form.submit()
	if err != nil {
		slog.Debug("search rejected", "error", err)
		if slot >= 0 {
			m.homeFocus = slot
		}
		cmd := m.form.focus(m.homeFocus)
		return m, cmd
	}

	if err := m.nav.SubmitSearch(criteria); err != nil {
		// The form already validated; the machine applies the same rules.
		slog.Error("submit search", "error", err)
		return m, nil
	}
	slog.Info("search submitted", "from", criteria.From, "to", criteria.To, "date", criteria.Date)

	m.form.reset()
	m.form.focus(-1)
	m.homeFocus = focusFrom
	m.selectedFlight = 0
	return m, nil
}

// renderHome renders the search form and the roulette button.
func (m Model) renderHome() string {
	styles := m.theme.Styles()
	roulette := m.nav.Roulette()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Where Next?"))
	b.WriteString("\n")
	b.WriteString(m.form.view(styles, m.homeFocus))
	b.WriteString("\n")

	searchBtn := styles.Button
	if m.homeFocus == focusSearch {
		searchBtn = styles.ButtonFocused
	}
	b.WriteString(searchBtn.Render("SEARCH FLIGHTS →"))
	b.WriteString("\n")
	b.WriteString(styles.HighlightText.Render("  or"))
	b.WriteString("\n")

	rouletteBtn := styles.Button
	switch {
	case roulette.Spinning:
		rouletteBtn = styles.ButtonDisabled
	case m.homeFocus == focusRoulette:
		rouletteBtn = styles.ButtonFocused
	}
	b.WriteString(rouletteBtn.Render("🎲 Travel Roulette"))
	b.WriteString("\n")

	if roulette.Spinning {
		b.WriteString(styles.HighlightText.Render(m.spinner.View() + " Spinning globe..."))
	} else {
		b.WriteString(styles.FaintText.Render("A random destination under " +
			currency.Format(m.selector.MaxPrice(), m.currency)))
	}

	return b.String()
}
