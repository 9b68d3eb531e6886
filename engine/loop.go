package engine

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// EventHandler consumes one input event; returning false stops the loop
type EventHandler[E any] func(E) bool

// Loop is the single logical thread of the sandbox
// It multiplexes three sources: frame ticks (stall on pause), wall-clock timers (never stall)
// and input events (handled at arrival). No two handlers ever run concurrently.
type Loop[E any] struct {
	scheduler *ClockScheduler
	timers    *TimerService
	clock     *PausableClock
	interval  time.Duration
	logger    *zap.Logger

	handle  EventHandler[E]
	onFrame func()

	frames atomic.Uint64
}

// NewLoop wires the loop; onFrame runs after every frame, paused or not
func NewLoop[E any](
	scheduler *ClockScheduler,
	timers *TimerService,
	clock *PausableClock,
	interval time.Duration,
	logger *zap.Logger,
	handle EventHandler[E],
	onFrame func(),
) *Loop[E] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop[E]{
		scheduler: scheduler,
		timers:    timers,
		clock:     clock,
		interval:  interval,
		logger:    logger,
		handle:    handle,
		onFrame:   onFrame,
	}
}

// Frame executes one frame: a scheduler tick unless paused, then the frame hook
func (l *Loop[E]) Frame() {
	l.frames.Add(1)
	if !l.clock.IsPaused() {
		l.scheduler.Tick(l.interval)
	}
	if l.onFrame != nil {
		l.onFrame()
	}
}

// Frames returns the number of frames executed, including paused ones
func (l *Loop[E]) Frames() uint64 {
	return l.frames.Load()
}

// Pause stalls the tick domain; timers keep firing
func (l *Loop[E]) Pause() {
	l.clock.Pause()
	l.logger.Debug("tick loop paused", zap.Uint64("tick", l.scheduler.TickCount()))
}

// Resume restarts the tick domain
func (l *Loop[E]) Resume() {
	l.clock.Resume()
	l.logger.Debug("tick loop resumed", zap.Uint64("tick", l.scheduler.TickCount()))
}

// TogglePause flips the pause state and returns the new state
func (l *Loop[E]) TogglePause() bool {
	if l.clock.IsPaused() {
		l.Resume()
		return false
	}
	l.Pause()
	return true
}

// Paused reports whether ticks are stalled
func (l *Loop[E]) Paused() bool {
	return l.clock.IsPaused()
}

// Run drives the loop until ctx is cancelled, events is closed, or the handler returns false
func (l *Loop[E]) Run(ctx context.Context, events <-chan E) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	wake := time.NewTimer(0)
	if !wake.Stop() {
		select {
		case <-wake.C:
		default:
		}
	}
	defer wake.Stop()

	l.logger.Info("loop started", zap.Duration("interval", l.interval))
	defer l.logger.Info("loop stopped",
		zap.Uint64("frames", l.frames.Load()),
		zap.Uint64("ticks", l.scheduler.TickCount()),
	)

	for {
		l.armWake(wake)

		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !l.handle(ev) {
				return nil
			}

		case <-ticker.C:
			l.Frame()

		case <-wake.C:
			l.timers.FireDue()
		}
	}
}

// armWake points the wake timer at the earliest pending deadline
func (l *Loop[E]) armWake(wake *time.Timer) {
	if !wake.Stop() {
		select {
		case <-wake.C:
		default:
		}
	}
	deadline, ok := l.timers.NextDeadline()
	if !ok {
		return
	}
	d := deadline.Sub(l.timers.Now())
	if d < 0 {
		d = 0
	}
	wake.Reset(d)
}
