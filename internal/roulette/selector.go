package roulette

import (
	"errors"

	"github.com/five82/flightly/internal/catalog"
)

// DefaultMaxPrice is the exclusive price ceiling for roulette picks.
const DefaultMaxPrice = 400

// ErrNoEligibleDestination is returned when no destination is under the
// price threshold.
var ErrNoEligibleDestination = errors.New("no destination under the roulette price threshold")

// Selector draws a random destination priced below MaxPrice.
type Selector struct {
	maxPrice float64
	rand     Rand
}

// NewSelector builds a Selector. A non-positive maxPrice uses DefaultMaxPrice
// and a nil source uses SafeRand.
func NewSelector(maxPrice float64, r Rand) *Selector {
	if maxPrice <= 0 {
		maxPrice = DefaultMaxPrice
	}
	if r == nil {
		r = NewSafeRand()
	}
	return &Selector{maxPrice: maxPrice, rand: r}
}

// MaxPrice returns the exclusive price threshold.
func (s *Selector) MaxPrice() float64 {
	return s.maxPrice
}

// Eligible returns the destinations with price < MaxPrice, in input order.
func (s *Selector) Eligible(destinations []catalog.Destination) []catalog.Destination {
	out := make([]catalog.Destination, 0, len(destinations))
	for _, d := range destinations {
		if d.Price < s.maxPrice {
			out = append(out, d)
		}
	}
	return out
}

// Pick returns one eligible destination chosen uniformly at random.
func (s *Selector) Pick(destinations []catalog.Destination) (catalog.Destination, error) {
	eligible := s.Eligible(destinations)
	if len(eligible) == 0 {
		return catalog.Destination{}, ErrNoEligibleDestination
	}
	idx := s.rand.Intn(len(eligible))
	if idx < 0 || idx >= len(eligible) {
		idx = 0
	}
	return eligible[idx], nil
}
