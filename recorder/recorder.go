// Package recorder keeps the bounded rolling pose history of the controlled body
package recorder

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/echo-sandbox/component"
	"github.com/lixenwraith/echo-sandbox/status"
)

// Recorder is a fixed-capacity FIFO of poses backed by a ring buffer
// Owned and mutated only by the tick callback that samples the controlled body;
// every other reader receives a Snapshot copy
type Recorder struct {
	buf   []component.Pose
	head  int // index of the oldest pose
	count int

	statLen *atomic.Int64
}

// Capacity computes C = horizon × sample rate, at least 1
// Integer nanosecond math keeps exact products such as 290ms × 100Hz from truncating
func Capacity(horizon time.Duration, sampleRate int) int {
	c := int(horizon * time.Duration(sampleRate) / time.Second)
	if c < 1 {
		return 1
	}
	return c
}

// New creates a recorder holding at most capacity poses; reg may be nil
func New(capacity int, reg *status.Registry) *Recorder {
	if capacity < 1 {
		capacity = 1
	}
	r := &Recorder{
		buf: make([]component.Pose, capacity),
	}
	if reg != nil {
		r.statLen = reg.Ints.Get(status.KeyRecordLen)
	}
	return r
}

// Sample appends pose, evicting the oldest entry first when full
func (r *Recorder) Sample(pose component.Pose) {
	capacity := len(r.buf)
	if r.count == capacity {
		// Overwrite the oldest slot and advance head: evict then append in O(1)
		r.buf[r.head] = pose
		r.head = (r.head + 1) % capacity
	} else {
		r.buf[(r.head+r.count)%capacity] = pose
		r.count++
	}

	if r.statLen != nil {
		r.statLen.Store(int64(r.count))
	}
}

// Len returns the number of recorded poses
func (r *Recorder) Len() int {
	return r.count
}

// Cap returns the fixed capacity
func (r *Recorder) Cap() int {
	return len(r.buf)
}

// At returns the i-th pose in chronological order (0 = oldest)
func (r *Recorder) At(i int) (component.Pose, bool) {
	if i < 0 || i >= r.count {
		return component.Pose{}, false
	}
	return r.buf[(r.head+i)%len(r.buf)], true
}

// Latest returns the most recently sampled pose
func (r *Recorder) Latest() (component.Pose, bool) {
	return r.At(r.count - 1)
}

// Snapshot returns an independent chronological copy of the history
// The result shares no memory with the recorder; an empty history yields an empty, non-nil slice
func (r *Recorder) Snapshot() []component.Pose {
	out := make([]component.Pose, r.count)
	capacity := len(r.buf)
	first := min(r.count, capacity-r.head)
	copy(out, r.buf[r.head:r.head+first])
	copy(out[first:], r.buf[:r.count-first])
	return out
}

// Reset drops all history
func (r *Recorder) Reset() {
	clear(r.buf)
	r.head = 0
	r.count = 0
	if r.statLen != nil {
		r.statLen.Store(0)
	}
}
