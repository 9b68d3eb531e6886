package input

import (
	"time"

	"github.com/lixenwraith/echo-sandbox/engine"
)

// HoldTracker synthesizes key-up events for terminals, which only report presses
// A key stays held while auto-repeat presses keep arriving; silence longer than the
// timeout releases it. The first gap (before auto-repeat starts) uses a longer timeout.
type HoldTracker struct {
	timers  *engine.TimerService
	initial time.Duration
	repeat  time.Duration
	emit    func(KeyEvent)

	keys map[string]*holdEntry
}

type holdEntry struct {
	timer engine.TimerID
}

// NewHoldTracker creates a tracker that reports releases through emit
func NewHoldTracker(timers *engine.TimerService, initial, repeat time.Duration, emit func(KeyEvent)) *HoldTracker {
	return &HoldTracker{
		timers:  timers,
		initial: initial,
		repeat:  repeat,
		emit:    emit,
		keys:    make(map[string]*holdEntry),
	}
}

// Press registers a key press and returns the key-down event to dispatch
func (h *HoldTracker) Press(key string) KeyEvent {
	if entry, ok := h.keys[key]; ok {
		if h.timers.Reschedule(entry.timer, h.repeat) {
			return KeyEvent{Key: key, Down: true}
		}
	}

	entry := &holdEntry{}
	entry.timer = h.timers.AfterFunc(h.initial, func() {
		delete(h.keys, key)
		h.emit(KeyEvent{Key: key, Down: false})
	})
	h.keys[key] = entry
	return KeyEvent{Key: key, Down: true}
}

// Holding reports whether key is currently considered held
func (h *HoldTracker) Holding(key string) bool {
	_, ok := h.keys[key]
	return ok
}

// ReleaseAll cancels pending releases and emits key-up for every held key
func (h *HoldTracker) ReleaseAll() {
	for key, entry := range h.keys {
		h.timers.Cancel(entry.timer)
		delete(h.keys, key)
		h.emit(KeyEvent{Key: key, Down: false})
	}
}
