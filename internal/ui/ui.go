package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flightly/internal/catalog"
	"github.com/five82/flightly/internal/currency"
	"github.com/five82/flightly/internal/prefs"
	"github.com/five82/flightly/internal/roulette"
	"github.com/five82/flightly/internal/state"
)

// Options configures the UI.
type Options struct {
	Context       context.Context
	Catalog       *catalog.Catalog
	Selector      *roulette.Selector
	Currency      string
	RouletteDelay time.Duration
	ThemeName     string
	PrefsPath     string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx           context.Context
	catalog       *catalog.Catalog
	selector      *roulette.Selector
	currency      string
	rouletteDelay time.Duration
	prefsPath     string
	keys          keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Navigation state
	nav *state.Machine

	// Home state
	form      searchForm
	homeFocus int
	spinner   spinner.Model

	// Results state
	selectedFlight int

	// Notices
	notice    notice
	noticeSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	selector := opts.Selector
	if selector == nil {
		selector = roulette.NewSelector(roulette.DefaultMaxPrice, nil)
	}

	delay := opts.RouletteDelay
	if delay <= 0 {
		delay = DefaultRouletteDelay
	}

	code := strings.TrimSpace(opts.Currency)
	if code == "" {
		code = currency.DefaultCode
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:           ctx,
		catalog:       cat,
		selector:      selector,
		currency:      code,
		rouletteDelay: delay,
		prefsPath:     prefsPath,
		keys:          DefaultKeyMap(),
		theme:         GetTheme(themeName),
		nav:           state.NewMachine(),
		form:          newSearchForm(),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Globe)),
	}
	m.form.focus(focusFrom)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.nav.Roulette().Spinning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case rouletteSettledMsg:
		return m.handleRouletteSettled(msg)

	case noticeExpiredMsg:
		if msg.id == m.notice.id {
			m.notice = notice{}
		}
		return m, nil
	}

	// Cursor blinks and other input messages belong to the form.
	if m.nav.Screen() == state.ScreenHome {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey routes keyboard input: help overlay first, then global keys,
// then the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	screen := m.nav.Screen()
	typing := screen == state.ScreenHome

	switch {
	case key.Matches(msg, m.keys.Quit), !typing && key.Matches(msg, m.keys.QuitLetter):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help), !typing && key.Matches(msg, m.keys.HelpLetter):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			slog.Warn("save prefs failed", "error", err)
		}
		cmd := m.setNotice(noticeInfo, "Theme: "+m.theme.Name)
		return m, cmd

	case key.Matches(msg, m.keys.Home):
		return m.goHome()

	case key.Matches(msg, m.keys.Profile), !typing && key.Matches(msg, m.keys.ProfileLetter):
		return m.goProfile()
	}

	switch screen {
	case state.ScreenHome:
		return m.handleHomeKey(msg)
	case state.ScreenResults:
		return m.handleResultsKey(msg)
	case state.ScreenProfile:
		return m.handleProfileKey(msg)
	}
	return m, nil
}

// goHome resets navigation and the form. Any spin in flight is cancelled.
func (m Model) goHome() (tea.Model, tea.Cmd) {
	from := m.nav.Screen()
	cancelled := m.nav.Roulette().Spinning
	m.nav.GoHome()
	m.form.reset()
	m.homeFocus = focusFrom
	m.selectedFlight = 0
	slog.Info("navigate", "from", from.String(), "to", state.ScreenHome.String())
	cmd := m.form.focus(focusFrom)
	if !cancelled {
		return m, cmd
	}
	slog.Info("roulette cancelled")
	noticeCmd := m.setNotice(noticeInfo, "Roulette cancelled")
	return m, tea.Batch(cmd, noticeCmd)
}

func (m Model) goProfile() (tea.Model, tea.Cmd) {
	from := m.nav.Screen()
	m.nav.GoProfile()
	m.form.focus(-1)
	slog.Info("navigate", "from", from.String(), "to", state.ScreenProfile.String())
	return m, nil
}

// renderMain renders header, command bar, content and notice.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderContent())

	if n := m.renderNotice(); n != "" {
		b.WriteString("\n")
		b.WriteString(n)
	}

	return b.String()
}

// renderContent renders the active screen inside a card.
func (m Model) renderContent() string {
	var body string
	switch m.nav.Screen() {
	case state.ScreenHome:
		body = m.renderHome()
	case state.ScreenResults:
		body = m.renderResults()
	case state.ScreenProfile:
		body = m.renderProfile()
	}
	return m.theme.Styles().Card.Width(m.cardWidth()).Render(body)
}

func (m Model) cardWidth() int {
	w := m.width - 4
	if w > CardMaxWidth {
		w = CardMaxWidth
	}
	if w < CardMinWidth {
		w = CardMinWidth
	}
	return w
}

func (m Model) formatPrice(amount float64) string {
	return currency.Format(amount, m.currency)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		// Cancelled from outside (signal); not a failure.
		return nil
	}
	return err
}
