package parameter

import "time"

// Loop timing
const (
	// TickRate is the logical simulation rate in ticks per second
	TickRate = 60

	// TickInterval is the fixed step fed to the scheduler and physics
	TickInterval = time.Second / TickRate

	// MaxTickRate caps the --fps override
	MaxTickRate = 240

	// EventQueueSize buffers terminal events between the poll goroutine and the loop
	EventQueueSize = 64
)
