package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/echo-sandbox/status"
)

// TickFunc is a per-tick callback; tick is the 1-based index of the current tick
type TickFunc func(tick uint64, dt time.Duration)

// Handle identifies a registered tick callback for later removal
type Handle uint64

// Tick callback priorities, lower runs first
const (
	PriorityRecord  = 100
	PriorityReplay  = 200
	PriorityMotion  = 300
	PriorityPhysics = 400
)

type tickEntry struct {
	handle   Handle
	name     string
	priority int
	seq      uint64
	fn       TickFunc
	removed  bool
}

// ClockScheduler owns the ordered per-tick callback list and the logical tick counter
// Ticks are driven externally (Loop) and stall with it, unlike TimerService
type ClockScheduler struct {
	entries []*tickEntry
	pending []*tickEntry
	byID    map[Handle]*tickEntry
	nextID  Handle
	seq     uint64

	tickCount atomic.Uint64
	ticking   bool

	statTicks *atomic.Int64
}

// NewClockScheduler creates an empty scheduler; reg may be nil
func NewClockScheduler(reg *status.Registry) *ClockScheduler {
	cs := &ClockScheduler{
		byID:   make(map[Handle]*tickEntry),
		nextID: 1,
	}
	if reg != nil {
		cs.statTicks = reg.Ints.Get(status.KeyTicks)
	}
	return cs
}

// Register adds a callback; equal priorities run in registration order
func (cs *ClockScheduler) Register(name string, priority int, fn TickFunc) Handle {
	h := cs.nextID
	cs.nextID++
	cs.seq++

	entry := &tickEntry{handle: h, name: name, priority: priority, seq: cs.seq, fn: fn}
	cs.byID[h] = entry

	// Callbacks registered during a tick first run on the next tick
	if cs.ticking {
		cs.pending = append(cs.pending, entry)
		return h
	}
	cs.entries = append(cs.entries, entry)
	cs.sortEntries()
	return h
}

// Remove unregisters a callback; a callback removed mid-tick does not run later in that tick
func (cs *ClockScheduler) Remove(h Handle) bool {
	entry, ok := cs.byID[h]
	if !ok {
		return false
	}
	entry.removed = true
	delete(cs.byID, h)

	if !cs.ticking {
		cs.compact()
	}
	return true
}

// Tick runs every registered callback once, in priority order
func (cs *ClockScheduler) Tick(dt time.Duration) uint64 {
	tick := cs.tickCount.Add(1)

	cs.ticking = true
	for _, entry := range cs.entries {
		if entry.removed {
			continue
		}
		entry.fn(tick, dt)
	}
	cs.ticking = false

	if len(cs.pending) > 0 {
		cs.entries = append(cs.entries, cs.pending...)
		cs.pending = cs.pending[:0]
		cs.sortEntries()
	}
	cs.compact()

	if cs.statTicks != nil {
		cs.statTicks.Store(int64(tick))
	}
	return tick
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Len returns the number of live callbacks
func (cs *ClockScheduler) Len() int {
	return len(cs.byID)
}

// Names returns live callback names in execution order
func (cs *ClockScheduler) Names() []string {
	names := make([]string, 0, len(cs.entries))
	for _, e := range cs.entries {
		if !e.removed {
			names = append(names, e.name)
		}
	}
	return names
}

func (cs *ClockScheduler) sortEntries() {
	sort.SliceStable(cs.entries, func(i, j int) bool {
		if cs.entries[i].priority != cs.entries[j].priority {
			return cs.entries[i].priority < cs.entries[j].priority
		}
		return cs.entries[i].seq < cs.entries[j].seq
	})
}

func (cs *ClockScheduler) compact() {
	live := cs.entries[:0]
	for _, e := range cs.entries {
		if !e.removed {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(cs.entries); i++ {
		cs.entries[i] = nil
	}
	cs.entries = live
}
