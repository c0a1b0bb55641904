package state

import (
	"errors"
	"testing"

	"github.com/five82/flightly/internal/catalog"
)

var (
	madrid = catalog.Destination{Name: "Madrid", Code: "MAD", Price: 320}
	lisbon = catalog.Destination{Name: "Lisbon", Code: "LIS", Price: 210}
)

func TestMachine_InitialState(t *testing.T) {
	var m Machine
	if m.Screen() != ScreenHome {
		t.Fatalf("Screen = %v, want home", m.Screen())
	}
	if !m.Search().IsZero() {
		t.Fatalf("Search = %#v, want empty", m.Search())
	}
	rs := m.Roulette()
	if rs.Spinning || rs.Result != nil {
		t.Fatalf("Roulette = %#v, want idle", rs)
	}
}

func TestMachine_SubmitSearch(t *testing.T) {
	m := NewMachine()

	if err := m.SubmitSearch(SearchCriteria{From: "LGW", To: "mad", Date: "2025-01-01"}); err != nil {
		t.Fatalf("SubmitSearch returned error: %v", err)
	}
	if m.Screen() != ScreenResults {
		t.Fatalf("Screen = %v, want results", m.Screen())
	}
	want := SearchCriteria{From: "LGW", To: "MAD", Date: "2025-01-01"}
	if m.Search() != want {
		t.Fatalf("Search = %#v, want %#v", m.Search(), want)
	}
}

func TestMachine_SubmitSearchInvalidLeavesState(t *testing.T) {
	m := NewMachine()
	m.GoProfile()

	err := m.SubmitSearch(SearchCriteria{From: "LGW"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if m.Screen() != ScreenProfile {
		t.Fatalf("Screen = %v, want profile (unchanged)", m.Screen())
	}
	if !m.Search().IsZero() {
		t.Fatalf("Search = %#v, want empty", m.Search())
	}
}

func TestMachine_GoHomeResetsFromAnyState(t *testing.T) {
	setups := map[string]func(m *Machine){
		"fresh": func(m *Machine) {},
		"after search": func(m *Machine) {
			_ = m.SubmitSearch(SearchCriteria{From: "LGW", To: "MAD", Date: "2025-01-01"})
		},
		"after roulette": func(m *Machine) {
			spin, _ := m.StartRoulette()
			m.CompleteRoulette(spin, lisbon)
		},
		"on profile after search": func(m *Machine) {
			_ = m.SubmitSearch(SearchCriteria{From: "LGW", To: "MAD", Date: "2025-01-01"})
			m.GoProfile()
		},
		"mid spin": func(m *Machine) {
			m.StartRoulette()
		},
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			m := NewMachine()
			setup(m)
			m.GoHome()
			m.GoHome() // idempotent

			if m.Screen() != ScreenHome {
				t.Fatalf("Screen = %v, want home", m.Screen())
			}
			if m.Search() != (SearchCriteria{}) {
				t.Fatalf("Search = %#v, want empty", m.Search())
			}
			if rs := m.Roulette(); rs.Result != nil || rs.Spinning {
				t.Fatalf("Roulette = %#v, want idle with nil result", rs)
			}
		})
	}
}

func TestMachine_GoProfileKeepsSearchAndRoulette(t *testing.T) {
	m := NewMachine()
	spin, _ := m.StartRoulette()
	m.CompleteRoulette(spin, madrid)

	m.GoProfile()
	if m.Screen() != ScreenProfile {
		t.Fatalf("Screen = %v, want profile", m.Screen())
	}
	if m.Search().To != "MAD" {
		t.Fatalf("Search.To = %q, want MAD", m.Search().To)
	}
	if rs := m.Roulette(); rs.Result == nil || rs.Result.Code != "MAD" {
		t.Fatalf("Roulette.Result = %#v, want MAD", rs.Result)
	}
}

func TestMachine_RouletteFlow(t *testing.T) {
	m := NewMachine()
	_ = m.SubmitSearch(SearchCriteria{From: "LGW", To: "MAD", Date: "2025-01-01"})

	spin, ok := m.StartRoulette()
	if !ok {
		t.Fatalf("StartRoulette returned false on idle machine")
	}
	rs := m.Roulette()
	if !rs.Spinning || rs.Result != nil {
		t.Fatalf("Roulette = %#v, want spinning with nil result", rs)
	}

	if !m.CompleteRoulette(spin, lisbon) {
		t.Fatalf("CompleteRoulette returned false for current spin")
	}
	rs = m.Roulette()
	if rs.Spinning {
		t.Fatalf("Spinning = true after completion")
	}
	if rs.Result == nil || rs.Result.Code != "LIS" {
		t.Fatalf("Result = %#v, want LIS", rs.Result)
	}
	if got := m.Search(); got != (SearchCriteria{To: "LIS"}) {
		t.Fatalf("Search = %#v, want {To: LIS}", got)
	}
	if m.Screen() != ScreenResults {
		t.Fatalf("Screen = %v, want results", m.Screen())
	}
}

func TestMachine_StartRouletteWhileSpinningIsNoop(t *testing.T) {
	m := NewMachine()
	first, _ := m.StartRoulette()

	second, ok := m.StartRoulette()
	if ok {
		t.Fatalf("second StartRoulette returned true while spinning")
	}
	if second != first {
		t.Fatalf("second StartRoulette spin = %v, want current %v", second, first)
	}
	if !m.Roulette().Spinning || m.Screen() != ScreenHome {
		t.Fatalf("state changed by ignored StartRoulette")
	}

	if !m.CompleteRoulette(first, madrid) {
		t.Fatalf("first spin should still complete")
	}
}

func TestMachine_GoHomeCancelsSpin(t *testing.T) {
	m := NewMachine()
	spin, _ := m.StartRoulette()

	m.GoHome()
	if m.CompleteRoulette(spin, madrid) {
		t.Fatalf("CompleteRoulette applied a cancelled spin")
	}
	if m.Screen() != ScreenHome || !m.Search().IsZero() || m.Roulette().Result != nil {
		t.Fatalf("cancelled spin changed state: screen=%v search=%#v", m.Screen(), m.Search())
	}

	next, ok := m.StartRoulette()
	if !ok || next == spin {
		t.Fatalf("StartRoulette after cancel = %v, %v; want fresh spin", next, ok)
	}
}

func TestMachine_SpinCompletesAfterNavigatingToProfile(t *testing.T) {
	m := NewMachine()
	spin, _ := m.StartRoulette()
	m.GoProfile()

	if !m.CompleteRoulette(spin, lisbon) {
		t.Fatalf("CompleteRoulette returned false")
	}
	if m.Screen() != ScreenResults {
		t.Fatalf("Screen = %v, want results", m.Screen())
	}
}

func TestMachine_FailRoulette(t *testing.T) {
	m := NewMachine()
	spin, _ := m.StartRoulette()

	if !m.FailRoulette(spin) {
		t.Fatalf("FailRoulette returned false for current spin")
	}
	rs := m.Roulette()
	if rs.Spinning || rs.Result != nil {
		t.Fatalf("Roulette = %#v, want idle", rs)
	}
	if m.Screen() != ScreenHome {
		t.Fatalf("Screen = %v, want home", m.Screen())
	}
	if m.FailRoulette(spin) {
		t.Fatalf("FailRoulette accepted a finished spin")
	}
}

func TestMachine_RouletteReturnsCopy(t *testing.T) {
	m := NewMachine()
	spin, _ := m.StartRoulette()
	m.CompleteRoulette(spin, madrid)

	rs := m.Roulette()
	rs.Result.Name = "Changed"
	if m.Roulette().Result.Name != "Madrid" {
		t.Fatalf("Roulette should return a copy of the result")
	}
}

func TestScreenString(t *testing.T) {
	cases := map[Screen]string{
		ScreenHome:    "home",
		ScreenResults: "results",
		ScreenProfile: "profile",
		Screen(42):    "unknown",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Screen(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
