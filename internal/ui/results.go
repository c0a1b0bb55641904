package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flightly/internal/booking"
)

// handleResultsKey processes keyboard input for the results screen.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	flights := m.catalog.Flights()

	switch {
	case key.Matches(msg, m.keys.Back):
		return m.goHome()

	case key.Matches(msg, m.keys.Down):
		if m.selectedFlight < len(flights)-1 {
			m.selectedFlight++
		}

	case key.Matches(msg, m.keys.Up):
		if m.selectedFlight > 0 {
			m.selectedFlight--
		}

	case key.Matches(msg, m.keys.Book):
		if len(flights) == 0 {
			return m, nil
		}
		flight := flights[clampInt(m.selectedFlight, 0, len(flights)-1)]
		conf := booking.Confirm(flight, m.catalog.DestinationName(m.nav.Search().To))
		slog.Info("flight booked",
			"flight_no", conf.FlightNo,
			"destination", conf.Destination,
			"ref", conf.Ref,
		)
		cmd := m.setNotice(noticeSuccess, conf.Message+"  ref "+conf.Ref)
		return m, cmd
	}

	return m, nil
}

// renderResults renders the resolved destination and the flight list.
func (m Model) renderResults() string {
	styles := m.theme.Styles()
	search := m.nav.Search()
	name := m.catalog.DestinationName(search.To)

	var b strings.Builder
	b.WriteString(styles.Title.Render("Flights to " + name))
	b.WriteString("\n")

	if rs := m.nav.Roulette(); rs.Result != nil {
		pick := rs.Result
		b.WriteString(styles.HighlightText.Render("🎲 Roulette pick: " + pick.Name))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%s · %s · from %s",
			pick.Category, truncate(pick.Info, m.cardWidth()/2), m.formatPrice(pick.Price))))
		b.WriteString("\n\n")
	} else if route := routeLine(search.From, search.To, search.Date); route != "" {
		b.WriteString(styles.MutedText.Render(route))
		b.WriteString("\n\n")
	}

	flights := m.catalog.Flights()
	if len(flights) == 0 {
		b.WriteString(styles.FaintText.Render("No flights scheduled."))
		return b.String()
	}

	for i, f := range flights {
		line := fmt.Sprintf("%s  %s  Flight No %s  %s",
			padRight(f.Time, 5),
			padRight(f.Duration, 6),
			padRight(f.FlightNo, 6),
			m.formatPrice(f.Price),
		)
		if i == m.selectedFlight {
			b.WriteString(styles.Selected.Render("▸ " + line + "  [Book Flight]"))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func routeLine(from, to, date string) string {
	parts := make([]string, 0, 2)
	if from != "" || to != "" {
		parts = append(parts, fmt.Sprintf("%s → %s", orDash(from), orDash(to)))
	}
	if date != "" {
		parts = append(parts, date)
	}
	return strings.Join(parts, " · ")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
