package parameter

import "time"

// Game Loop Timing
const (
	// TickInterval is the host shell tick cadence
	TickInterval = 60 * time.Millisecond

	// MaxTickDelta caps the dt handed to a tick after a stall (e.g. resume from pause)
	MaxTickDelta = 250 * time.Millisecond
)
