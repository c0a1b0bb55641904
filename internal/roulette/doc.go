// Package roulette picks a discounted destination at random.
//
// A Selector filters the catalog down to destinations priced strictly below
// its threshold and draws one of them uniformly. The draw itself is
// instantaneous; the "spinning globe" delay lives in the UI, which schedules
// the pick as a timed command and hands the outcome to the navigation state
// machine.
//
// When nothing in the catalog is under the threshold, Pick returns
// ErrNoEligibleDestination instead of indexing into an empty set.
package roulette
