package ui

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flightly/internal/catalog"
	"github.com/five82/flightly/internal/roulette"
	"github.com/five82/flightly/internal/state"
)

// rouletteSettledMsg carries the outcome of a spin once the delay elapses.
type rouletteSettledMsg struct {
	spin state.Spin
	pick catalog.Destination
	err  error
}

// startRoulette begins a spin unless one is already running.
func (m Model) startRoulette() (tea.Model, tea.Cmd) {
	spin, ok := m.nav.StartRoulette()
	if !ok {
		return m, nil
	}
	slog.Info("roulette started", "spin", uint64(spin), "max_price", m.selector.MaxPrice())

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Globe))
	return m, tea.Batch(m.spinner.Tick, m.rouletteCmd(spin))
}

// rouletteCmd waits out the simulated spin, then draws the pick.
func (m Model) rouletteCmd(spin state.Spin) tea.Cmd {
	selector := m.selector
	destinations := m.catalog.Destinations()
	return tea.Tick(m.rouletteDelay, func(time.Time) tea.Msg {
		pick, err := selector.Pick(destinations)
		return rouletteSettledMsg{spin: spin, pick: pick, err: err}
	})
}

func (m Model) handleRouletteSettled(msg rouletteSettledMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if !m.nav.FailRoulette(msg.spin) {
			return m, nil
		}
		slog.Warn("roulette failed", "spin", uint64(msg.spin), "error", msg.err)
		text := "Roulette failed: " + msg.err.Error()
		if errors.Is(msg.err, roulette.ErrNoEligibleDestination) {
			text = "No destinations under " + m.formatPrice(m.selector.MaxPrice()) + " right now."
		}
		cmd := m.setNotice(noticeError, text)
		return m, cmd
	}

	if !m.nav.CompleteRoulette(msg.spin, msg.pick) {
		slog.Debug("stale roulette result dropped", "spin", uint64(msg.spin))
		return m, nil
	}
	slog.Info("roulette settled", "spin", uint64(msg.spin), "code", msg.pick.Code, "price", msg.pick.Price)

	m.form.reset()
	m.form.focus(-1)
	m.homeFocus = focusFrom
	m.selectedFlight = 0
	return m, nil
}
