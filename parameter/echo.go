package parameter

import "time"

// Pose history
const (
	// RecordHorizon is how far back the recorder remembers
	// One sample is taken per tick, so capacity scales with the tick rate
	RecordHorizon = 5 * time.Second
)

// Echoes
const (
	EchoSize = PlayerSize

	// CloneLifetime is wall-clock time before a clone disappears, paused or not
	CloneLifetime = 5000 * time.Millisecond
)
