package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestLoop(provider TimeProvider, handle EventHandler[string], onFrame func()) (*Loop[string], *ClockScheduler, *TimerService) {
	cs := NewClockScheduler(nil)
	ts := NewTimerService(provider, nil)
	clock := NewPausableClock(provider)
	return NewLoop(cs, ts, clock, 5*time.Millisecond, nil, handle, onFrame), cs, ts
}

func TestLoop_FrameTicksUnlessPaused(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	rendered := 0
	loop, cs, _ := newTestLoop(mock, nil, func() { rendered++ })

	loop.Frame()
	loop.Pause()
	loop.Frame()
	loop.Frame()
	assert.True(t, loop.Paused())
	assert.False(t, loop.TogglePause())
	loop.Frame()

	assert.Equal(t, uint64(2), cs.TickCount(), "paused frames must not tick")
	assert.Equal(t, 4, rendered, "frames render even while paused")
	assert.Equal(t, uint64(4), loop.Frames())
}

func TestLoop_TimersFireWhilePaused(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop, cs, ts := newTestLoop(NewMonotonicTimeProvider(), nil, nil)
	loop.Pause()

	fired := make(chan struct{})
	ts.AfterFunc(20*time.Millisecond, func() {
		close(fired)
		cancel()
	})

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx, nil) }()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire while tick loop was paused")
	}
	require.NoError(t, <-done)
	assert.Equal(t, uint64(0), cs.TickCount())
}

func TestLoop_HandlerStopsLoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	var seen []string
	loop, _, _ := newTestLoop(NewMonotonicTimeProvider(), func(ev string) bool {
		seen = append(seen, ev)
		return ev != "quit"
	}, nil)

	events := make(chan string, 3)
	events <- "a"
	events <- "quit"
	events <- "never"

	require.NoError(t, loop.Run(context.Background(), events))
	assert.Equal(t, []string{"a", "quit"}, seen)
}

func TestLoop_TicksUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	loop, cs, _ := newTestLoop(NewMonotonicTimeProvider(), nil, nil)

	cs.Register("stopper", 0, func(tick uint64, _ time.Duration) {
		if tick == 3 {
			cancel()
		}
	})

	require.NoError(t, loop.Run(ctx, nil))
	assert.GreaterOrEqual(t, cs.TickCount(), uint64(3))
}
