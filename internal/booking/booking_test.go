package booking

import (
	"testing"

	"github.com/five82/flightly/internal/catalog"
)

func TestConfirm(t *testing.T) {
	flight := catalog.Flight{Time: "08:00", FlightNo: "1812", Price: 400}

	c := Confirm(flight, "Madrid")
	if c.Message != "Booked flight 1812 to Madrid! 🎉" {
		t.Fatalf("Message = %q", c.Message)
	}
	if c.FlightNo != "1812" || c.Destination != "Madrid" {
		t.Fatalf("Confirmation = %#v", c)
	}
	if len(c.Ref) != 8 {
		t.Fatalf("Ref = %q, want 8 characters", c.Ref)
	}
}

func TestConfirm_UnknownDestination(t *testing.T) {
	c := Confirm(catalog.Flight{FlightNo: "1813"}, "  ")
	if c.Destination != catalog.UnknownDestination {
		t.Fatalf("Destination = %q, want %q", c.Destination, catalog.UnknownDestination)
	}
	if c.Message != "Booked flight 1813 to Unknown! 🎉" {
		t.Fatalf("Message = %q", c.Message)
	}
}

func TestConfirm_RefsDiffer(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ref := Confirm(catalog.Flight{FlightNo: "1814"}, "Prague").Ref
		if seen[ref] {
			t.Fatalf("duplicate ref %q", ref)
		}
		seen[ref] = true
	}
}
