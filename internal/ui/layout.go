package ui

import "time"

// Layout limits.
const (
	// CardMaxWidth caps the content card so the form stays readable on wide
	// terminals.
	CardMaxWidth = 64

	// CardMinWidth is the narrowest card before content starts to wrap.
	CardMinWidth = 36

	// ProgressBarWidth is the width of the loyalty progress bar.
	ProgressBarWidth = 30
)

// Timing constants.
const (
	// DefaultRouletteDelay is the simulated spin time.
	DefaultRouletteDelay = 1200 * time.Millisecond

	// NoticeTTL is how long a notice stays on screen.
	NoticeTTL = 4 * time.Second
)
