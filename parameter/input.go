package parameter

import "time"

// Key hold synthesis
// Terminals report presses and auto-repeats only; a key counts as released after silence
const (
	// KeyHoldInitial covers the OS delay before auto-repeat starts
	KeyHoldInitial = 550 * time.Millisecond

	// KeyHoldRepeat covers the gap between auto-repeat presses
	KeyHoldRepeat = 120 * time.Millisecond
)
