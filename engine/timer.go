package engine

import (
	"container/heap"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/echo-sandbox/status"
)

// TimerID identifies a scheduled wall-clock callback
type TimerID uint64

type timerEntry struct {
	id       TimerID
	deadline time.Time
	seq      uint64
	fn       func()
	index    int
}

type timerHeap []*timerEntry

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if !h[i].deadline.Equal(h[j].deadline) {
		return h[i].deadline.Before(h[j].deadline)
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *timerHeap) Push(x any) {
	e := x.(*timerEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// TimerService schedules callbacks against wall-clock deadlines
// It is independent of the tick counter: a paused or stalled tick loop does not delay it
// Callbacks run on the goroutine that calls Fire, never concurrently
type TimerService struct {
	provider TimeProvider
	queue    timerHeap
	byID     map[TimerID]*timerEntry
	nextID   TimerID
	seq      uint64

	statPending *atomic.Int64
}

// NewTimerService creates a timer service reading time from provider; reg may be nil
func NewTimerService(provider TimeProvider, reg *status.Registry) *TimerService {
	ts := &TimerService{
		provider: provider,
		byID:     make(map[TimerID]*timerEntry),
		nextID:   1,
	}
	if reg != nil {
		ts.statPending = reg.Ints.Get(status.KeyTimersPending)
	}
	return ts
}

// AfterFunc schedules fn to run once d has elapsed from now
func (ts *TimerService) AfterFunc(d time.Duration, fn func()) TimerID {
	return ts.At(ts.provider.Now().Add(d), fn)
}

// At schedules fn to run once the wall clock reaches deadline
func (ts *TimerService) At(deadline time.Time, fn func()) TimerID {
	id := ts.nextID
	ts.nextID++
	ts.seq++

	e := &timerEntry{id: id, deadline: deadline, seq: ts.seq, fn: fn}
	heap.Push(&ts.queue, e)
	ts.byID[id] = e
	ts.publish()
	return id
}

// Cancel removes a pending timer; returns false if it already fired or never existed
func (ts *TimerService) Cancel(id TimerID) bool {
	e, ok := ts.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&ts.queue, e.index)
	delete(ts.byID, id)
	ts.publish()
	return true
}

// Reschedule moves a pending timer to a new deadline relative to now
// Returns false if the timer is no longer pending
func (ts *TimerService) Reschedule(id TimerID, d time.Duration) bool {
	e, ok := ts.byID[id]
	if !ok {
		return false
	}
	ts.seq++
	e.deadline = ts.provider.Now().Add(d)
	e.seq = ts.seq
	heap.Fix(&ts.queue, e.index)
	return true
}

// Fire runs every timer whose deadline is at or before now, in deadline order
// Timers scheduled by callbacks are eligible in the same call if already due
func (ts *TimerService) Fire(now time.Time) int {
	fired := 0
	for ts.queue.Len() > 0 {
		next := ts.queue[0]
		if next.deadline.After(now) {
			break
		}
		heap.Pop(&ts.queue)
		delete(ts.byID, next.id)
		fired++
		next.fn()
	}
	if fired > 0 {
		ts.publish()
	}
	return fired
}

// FireDue runs timers due at the provider's current time
func (ts *TimerService) FireDue() int {
	return ts.Fire(ts.provider.Now())
}

// NextDeadline returns the earliest pending deadline
func (ts *TimerService) NextDeadline() (time.Time, bool) {
	if ts.queue.Len() == 0 {
		return time.Time{}, false
	}
	return ts.queue[0].deadline, true
}

// Pending returns the number of scheduled timers
func (ts *TimerService) Pending() int {
	return len(ts.byID)
}

// Now exposes the service's wall clock
func (ts *TimerService) Now() time.Time {
	return ts.provider.Now()
}

func (ts *TimerService) publish() {
	if ts.statPending != nil {
		ts.statPending.Store(int64(len(ts.byID)))
	}
}
