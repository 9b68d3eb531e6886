package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float gauge for HUD readouts such as player speed and altitude
// The session writes it each tick and the HUD reads it while drawing
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) { f.bits.Store(math.Float64bits(val)) }
func (f *AtomicFloat) Get() float64    { return math.Float64frombits(f.bits.Load()) }
