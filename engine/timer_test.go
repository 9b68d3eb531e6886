package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/echo-sandbox/status"
)

func newMockTimers() (*TimerService, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewTimerService(mock, status.NewRegistry()), mock
}

func TestTimerService_FiresAtDeadline(t *testing.T) {
	ts, mock := newMockTimers()

	fired := false
	ts.AfterFunc(5000*time.Millisecond, func() { fired = true })

	if n := ts.Fire(mock.Advance(4999 * time.Millisecond)); n != 0 || fired {
		t.Fatalf("timer fired early (n=%d)", n)
	}
	if n := ts.Fire(mock.Advance(time.Millisecond)); n != 1 || !fired {
		t.Fatalf("timer did not fire at deadline (n=%d)", n)
	}
	if ts.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", ts.Pending())
	}
}

func TestTimerService_DeadlineOrder(t *testing.T) {
	ts, mock := newMockTimers()

	var order []string
	ts.AfterFunc(3*time.Second, func() { order = append(order, "c") })
	ts.AfterFunc(1*time.Second, func() { order = append(order, "a") })
	ts.AfterFunc(2*time.Second, func() { order = append(order, "b1") })
	ts.AfterFunc(2*time.Second, func() { order = append(order, "b2") })

	ts.Fire(mock.Advance(10 * time.Second))

	want := []string{"a", "b1", "b2", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTimerService_Cancel(t *testing.T) {
	ts, mock := newMockTimers()

	fired := false
	id := ts.AfterFunc(time.Second, func() { fired = true })
	other := ts.AfterFunc(2*time.Second, func() {})

	if !ts.Cancel(id) {
		t.Fatal("Cancel of pending timer should succeed")
	}
	if ts.Cancel(id) {
		t.Error("second Cancel should report false")
	}
	ts.Fire(mock.Advance(3 * time.Second))
	if fired {
		t.Error("cancelled timer fired")
	}
	if ts.Cancel(other) {
		t.Error("Cancel after fire should report false")
	}
}

func TestTimerService_Reschedule(t *testing.T) {
	ts, mock := newMockTimers()

	fired := 0
	id := ts.AfterFunc(100*time.Millisecond, func() { fired++ })

	mock.Advance(80 * time.Millisecond)
	if !ts.Reschedule(id, 100*time.Millisecond) {
		t.Fatal("Reschedule of pending timer should succeed")
	}
	ts.Fire(mock.Advance(50 * time.Millisecond))
	if fired != 0 {
		t.Fatal("rescheduled timer fired at old deadline")
	}
	ts.Fire(mock.Advance(50 * time.Millisecond))
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if ts.Reschedule(id, time.Second) {
		t.Error("Reschedule after fire should report false")
	}
}

func TestTimerService_NextDeadline(t *testing.T) {
	ts, mock := newMockTimers()

	if _, ok := ts.NextDeadline(); ok {
		t.Error("empty service should have no deadline")
	}
	ts.AfterFunc(2*time.Second, func() {})
	ts.AfterFunc(time.Second, func() {})

	d, ok := ts.NextDeadline()
	if !ok || !d.Equal(mock.Now().Add(time.Second)) {
		t.Errorf("NextDeadline = %v, %v", d, ok)
	}
}

func TestTimerService_CallbackSchedulesDueTimer(t *testing.T) {
	ts, mock := newMockTimers()

	chained := false
	ts.AfterFunc(time.Second, func() {
		ts.At(mock.Now(), func() { chained = true })
	})
	if n := ts.Fire(mock.Advance(time.Second)); n != 2 || !chained {
		t.Errorf("expected chained due timer to fire in same call, n=%d", n)
	}
}
