package session

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/echo-sandbox/input"
)

// EventKind discriminates loop events
type EventKind uint8

const (
	EventKey EventKind = iota
	EventResize
)

// Event is one item on the loop's input channel
// Key events are presses only; releases are synthesized inside the session
type Event struct {
	Kind   EventKind
	Key    string
	Width  int
	Height int
}

// KeyPress builds a key press event
func KeyPress(key string) Event {
	return Event{Kind: EventKey, Key: key}
}

// Resize builds a viewport resize event
func Resize(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// EventFromTcell converts a terminal event; false for events the sandbox ignores
func EventFromTcell(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key, ok := input.KeyName(e)
		if !ok {
			return Event{}, false
		}
		return KeyPress(key), true
	case *tcell.EventResize:
		w, h := e.Size()
		return Resize(w, h), true
	default:
		return Event{}, false
	}
}
