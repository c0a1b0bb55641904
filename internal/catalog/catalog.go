package catalog

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// UnknownDestination is the label shown when a code has no catalog entry.
const UnknownDestination = "Unknown"

// Catalog is the immutable set of destinations, flights and the profile.
type Catalog struct {
	destinations []Destination
	flights      []Flight
	profile      UserProfile
	byCode       map[string]int
}

// New validates the inputs and builds a Catalog from copies of them. Codes
// are trimmed and uppercased before the duplicate check.
func New(destinations []Destination, flights []Flight, profile UserProfile) (*Catalog, error) {
	c := &Catalog{
		destinations: make([]Destination, len(destinations)),
		flights:      make([]Flight, len(flights)),
		profile:      profile,
		byCode:       make(map[string]int, len(destinations)),
	}
	copy(c.flights, flights)

	for i, d := range destinations {
		d.Name = strings.TrimSpace(d.Name)
		d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
		c.destinations[i] = d

		if d.Code == "" {
			return nil, fmt.Errorf("destination %d (%q): code is empty", i, d.Name)
		}
		if !validPrice(d.Price) {
			return nil, fmt.Errorf("destination %s: invalid price %v", d.Code, d.Price)
		}
		if _, dup := c.byCode[d.Code]; dup {
			return nil, fmt.Errorf("destination %s: duplicate code", d.Code)
		}
		c.byCode[d.Code] = i
	}
	for _, f := range c.flights {
		if !validPrice(f.Price) {
			return nil, fmt.Errorf("flight %s: invalid price %v", f.FlightNo, f.Price)
		}
	}
	if profile.Points < 0 {
		return nil, fmt.Errorf("profile points must be >= 0, got %d", profile.Points)
	}
	if profile.Progress < 0 || profile.Progress > 100 {
		return nil, fmt.Errorf("profile progress must be within 0..100, got %d", profile.Progress)
	}
	return c, nil
}

// validPrice reports whether p is a finite, non-negative amount.
func validPrice(p float64) bool {
	return p >= 0 && !math.IsInf(p, 1)
}

// Default returns the built-in demo catalog.
func Default() *Catalog {
	c, err := New(defaultDestinations(), defaultFlights(), defaultProfile())
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in data invalid: %v", err))
	}
	return c
}

// Load reads a catalog file. An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("catalog file %s not found", path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var raw struct {
		Destinations []Destination `toml:"destinations"`
		Flights      []Flight      `toml:"flights"`
		Profile      *UserProfile  `toml:"profile"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	destinations := raw.Destinations
	if len(destinations) == 0 {
		destinations = defaultDestinations()
	}
	flights := raw.Flights
	if len(flights) == 0 {
		flights = defaultFlights()
	}
	profile := defaultProfile()
	if raw.Profile != nil {
		profile = *raw.Profile
	}

	c, err := New(destinations, flights, profile)
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return c, nil
}

// Destinations returns a copy of the destination list in catalog order.
func (c *Catalog) Destinations() []Destination {
	dup := make([]Destination, len(c.destinations))
	copy(dup, c.destinations)
	return dup
}

// Flights returns a copy of the static flight list.
func (c *Catalog) Flights() []Flight {
	dup := make([]Flight, len(c.flights))
	copy(dup, c.flights)
	return dup
}

// Profile returns the loyalty profile.
func (c *Catalog) Profile() UserProfile {
	return c.profile
}

// Lookup finds a destination by exact code.
func (c *Catalog) Lookup(code string) (Destination, bool) {
	idx, ok := c.byCode[code]
	if !ok {
		return Destination{}, false
	}
	return c.destinations[idx], true
}

// DestinationName resolves code to a display name, or UnknownDestination.
func (c *Catalog) DestinationName(code string) string {
	if d, ok := c.Lookup(code); ok {
		return d.Name
	}
	return UnknownDestination
}
