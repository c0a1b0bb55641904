// Package booking produces booking confirmations for the results screen.
//
// Booking is a demo action: a Confirmation is built and shown to the
// traveler, and nothing is stored or sent anywhere.
package booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/five82/flightly/internal/catalog"
)

// Confirmation describes a booked flight.
type Confirmation struct {
	Ref         string
	FlightNo    string
	Destination string
	Message     string
}

// Confirm builds a confirmation for flight to the destination named
// destination. An empty name is shown as catalog.UnknownDestination.
func Confirm(flight catalog.Flight, destination string) Confirmation {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		destination = catalog.UnknownDestination
	}
	return Confirmation{
		Ref:         newRef(),
		FlightNo:    flight.FlightNo,
		Destination: destination,
		Message:     fmt.Sprintf("Booked flight %s to %s! 🎉", flight.FlightNo, destination),
	}
}

// newRef returns a short upper-case booking reference.
func newRef() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:8])
}
