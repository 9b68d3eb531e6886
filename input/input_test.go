package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/echo-sandbox/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModShift), "z", true},
		{tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModNone), "v", true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space", true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "arrowup", true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), "arrowright", true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "ctrl+c", true},
		{tcell.NewEventKey(tcell.KeyF7, 0, tcell.ModNone), "", false},
	}
	for _, tt := range tests {
		got, ok := KeyName(tt.ev)
		assert.Equal(t, tt.ok, ok, tt.want)
		assert.Equal(t, tt.want, got)
	}
}

func TestKeyTable_DefaultsAndOverrides(t *testing.T) {
	kt := DefaultKeyTable()

	assert.Equal(t, []string{"arrowup", "z"}, kt.KeysFor(ActionForward))
	assert.Equal(t, []string{"arrowdown", "s"}, kt.KeysFor(ActionBackward))

	require.NoError(t, kt.Apply(map[string]string{
		"W":       "forward",
		"z":       "none",
		"Shift+P": "spawn_phantom",
	}))
	assert.Equal(t, []string{"arrowup", "w"}, kt.KeysFor(ActionForward))
	a, ok := kt.Lookup("shift+p")
	assert.True(t, ok)
	assert.Equal(t, ActionSpawnPhantom, a)

	err := kt.Apply(map[string]string{"x": "teleport"})
	assert.ErrorContains(t, err, "unknown action")
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("spawn_clone")
	require.NoError(t, err)
	assert.Equal(t, ActionSpawnClone, a)
	assert.Equal(t, "spawn_clone", a.String())
	assert.True(t, ActionLeft.Held())
	assert.False(t, ActionSpawnClone.Held())
}

func TestState_IgnoresUnboundKeys(t *testing.T) {
	s := NewState(DefaultKeyTable())

	assert.Equal(t, ActionNone, s.Apply(KeyEvent{Key: "x", Down: true}))
	assert.Equal(t, 0, s.Stored(), "unbound keys must never be stored")
	assert.False(t, s.KeyHeld("x"))

	assert.Equal(t, ActionForward, s.Apply(KeyEvent{Key: "z", Down: true}))
	assert.True(t, s.Held(ActionForward))
	assert.Equal(t, 1, s.Stored())

	s.Apply(KeyEvent{Key: "z", Down: false})
	assert.False(t, s.Held(ActionForward))
	assert.Equal(t, 1, s.Stored())
}

func TestState_AnyBindingHolds(t *testing.T) {
	s := NewState(DefaultKeyTable())
	s.Apply(KeyEvent{Key: "arrowleft", Down: true})
	s.Apply(KeyEvent{Key: "q", Down: true})
	s.Apply(KeyEvent{Key: "q", Down: false})

	assert.True(t, s.Held(ActionLeft), "arrowleft still held")
	s.ReleaseAll()
	assert.False(t, s.Held(ActionLeft))
}

func TestHoldTracker_SynthesizesRelease(t *testing.T) {
	mock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	timers := engine.NewTimerService(mock, nil)

	var released []string
	h := NewHoldTracker(timers, 500*time.Millisecond, 100*time.Millisecond, func(ev KeyEvent) {
		require.False(t, ev.Down)
		released = append(released, ev.Key)
	})

	ev := h.Press("z")
	assert.Equal(t, KeyEvent{Key: "z", Down: true}, ev)

	// Auto-repeat starts after ~400ms; key stays held
	timers.Fire(mock.Advance(400 * time.Millisecond))
	h.Press("z")
	timers.Fire(mock.Advance(80 * time.Millisecond))
	h.Press("z")
	timers.Fire(mock.Advance(80 * time.Millisecond))
	assert.Empty(t, released)
	assert.True(t, h.Holding("z"))

	// Repeats stop: released after the short timeout
	timers.Fire(mock.Advance(100 * time.Millisecond))
	assert.Equal(t, []string{"z"}, released)
	assert.False(t, h.Holding("z"))

	// A fresh press uses the initial timeout again
	h.Press("z")
	timers.Fire(mock.Advance(200 * time.Millisecond))
	assert.Len(t, released, 1)
	timers.Fire(mock.Advance(300 * time.Millisecond))
	assert.Len(t, released, 2)
}

func TestHoldTracker_ReleaseAll(t *testing.T) {
	mock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	timers := engine.NewTimerService(mock, nil)

	var released []string
	h := NewHoldTracker(timers, time.Second, 100*time.Millisecond, func(ev KeyEvent) {
		released = append(released, ev.Key)
	})
	h.Press("q")
	h.Press("d")
	h.ReleaseAll()

	assert.ElementsMatch(t, []string{"q", "d"}, released)
	assert.Equal(t, 0, timers.Pending())
}
