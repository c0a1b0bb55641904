// Package state owns Flightly's navigation state.
//
// # Overview
//
// Machine is the single owner of the current screen, the committed search
// criteria and the roulette state. Views never mutate these directly; they
// call the transition methods and read the result back through accessors.
//
// # Screens
//
//	         GoProfile()                  SubmitSearch()
//	┌────────────────────────┐      ┌─────────────────────┐
//	│                        ▼      │                     ▼
//	│   ┌──────┐  GoHome() ┌─────────┐   GoHome()   ┌─────────┐
//	└───│ Home │◀──────────│ Profile │─────────────▶│ Results │
//	    └──────┘           └─────────┘              └─────────┘
//	       ▲  StartRoulette() ... CompleteRoulette()     │
//	       └─────────────────────────────────────────────┘
//
// Every transition is valid from every screen; the diagram only shows the
// common paths. There is no terminal state.
//
// # Roulette
//
// StartRoulette flips Spinning on, clears the previous result and hands back
// a Spin ticket. The caller schedules the delayed pick and reports the outcome
// with CompleteRoulette or FailRoulette, passing the same ticket. While a spin
// is in flight further StartRoulette calls are ignored.
//
// GoHome cancels an in-flight spin: the ticket goes stale and its eventual
// outcome is dropped. Every other transition lets the spin finish, so a pick
// that lands while the profile is open still jumps to Results.
//
// # Concurrency
//
// Machine is not safe for concurrent use. It is designed to be driven from a
// single event loop (the Bubble Tea Update goroutine), which serialises every
// transition.
package state
