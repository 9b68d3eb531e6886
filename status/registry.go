package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the sandbox subsystems
const (
	KeyTicks          = "engine.ticks"
	KeyTimersPending  = "engine.timers"
	KeyRecordLen      = "recorder.len"
	KeyClonesLive     = "echo.clones"
	KeyPhantomsLive   = "echo.phantoms"
	KeyClonesTotal    = "echo.clones_total"
	KeyPhantomsTotal  = "echo.phantoms_total"
	KeyPlayerSpeed    = "player.speed"
	KeyPlayerAltitude = "player.altitude"
)

// Registry is the central metrics facade
// Subsystems cache pointers at construction; per-tick code writes atomics directly
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Lines formats every metric as "key=value", ints first, each group sorted
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", key, v.Get()))
	})
	return lines
}
