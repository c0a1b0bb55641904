package state

import "github.com/five82/flightly/internal/catalog"

// Screen identifies the visible top-level view.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenResults
	ScreenProfile
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenResults:
		return "results"
	case ScreenProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// RouletteState is the transient roulette status. Result is nil while
// spinning and after GoHome.
type RouletteState struct {
	Spinning bool
	Result   *catalog.Destination
}

// Spin identifies one roulette run.
type Spin uint64

// Machine holds the current screen, search criteria and roulette state.
// The zero value is ready to use and starts on ScreenHome.
type Machine struct {
	screen   Screen
	search   SearchCriteria
	spinning bool
	result   *catalog.Destination
	spin     Spin
}

// NewMachine returns a machine on the home screen.
func NewMachine() *Machine {
	return &Machine{}
}

// Screen returns the active screen.
func (m *Machine) Screen() Screen {
	return m.screen
}

// Search returns the committed search criteria.
func (m *Machine) Search() SearchCriteria {
	return m.search
}

// Roulette returns a copy of the roulette state.
func (m *Machine) Roulette() RouletteState {
	rs := RouletteState{Spinning: m.spinning}
	if m.result != nil {
		dup := *m.result
		rs.Result = &dup
	}
	return rs
}

// GoHome shows the home screen, clears the search and the roulette result,
// and cancels any spin in flight.
func (m *Machine) GoHome() {
	m.screen = ScreenHome
	m.search = SearchCriteria{}
	m.result = nil
	if m.spinning {
		m.spinning = false
		m.spin++
	}
}

// GoProfile shows the profile screen.
func (m *Machine) GoProfile() {
	m.screen = ScreenProfile
}

// SubmitSearch commits criteria and shows the results screen. It returns a
// *ValidationError, leaving state unchanged, when a field is empty.
func (m *Machine) SubmitSearch(c SearchCriteria) error {
	normalized, err := NewSearchCriteria(c.From, c.To, c.Date)
	if err != nil {
		return err
	}
	m.search = normalized
	m.screen = ScreenResults
	return nil
}

// StartRoulette begins a spin. It returns false and changes nothing when a
// spin is already running.
func (m *Machine) StartRoulette() (Spin, bool) {
	if m.spinning {
		return m.spin, false
	}
	m.spin++
	m.spinning = true
	m.result = nil
	return m.spin, true
}

// CompleteRoulette applies a pick for spin and shows the results screen.
// Outcomes for stale spins are dropped and false is returned.
func (m *Machine) CompleteRoulette(spin Spin, pick catalog.Destination) bool {
	if !m.current(spin) {
		return false
	}
	m.spinning = false
	m.result = &pick
	m.search = SearchCriteria{To: pick.Code}
	m.screen = ScreenResults
	return true
}

// FailRoulette ends spin without a pick. The screen is left as is.
func (m *Machine) FailRoulette(spin Spin) bool {
	if !m.current(spin) {
		return false
	}
	m.spinning = false
	m.result = nil
	return true
}

func (m *Machine) current(spin Spin) bool {
	return m.spinning && spin == m.spin
}
