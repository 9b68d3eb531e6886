package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/echo-sandbox/session"
)

func simulatedTerminal() *terminal {
	return &terminal{newScreen: func() (tcell.Screen, error) {
		return tcell.NewSimulationScreen(""), nil
	}}
}

func TestTerminalLifecycle(t *testing.T) {
	term := simulatedTerminal()
	if err := term.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if term.screen == nil {
		t.Fatal("Expected screen after Start")
	}
	if err := term.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	// Second stop must not finalize twice
	if err := term.Stop(); err != nil {
		t.Fatalf("Second Stop: %v", err)
	}
}

func TestTerminalCreateFailure(t *testing.T) {
	boom := errors.New("no tty")
	term := &terminal{newScreen: func() (tcell.Screen, error) { return nil, boom }}
	if err := term.Start(); !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped create error, got %v", err)
	}
	if err := term.Stop(); err != nil {
		t.Fatalf("Stop without screen: %v", err)
	}
}

func TestPollEventsForwardsKeys(t *testing.T) {
	term := simulatedTerminal()
	if err := term.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sim := term.screen.(tcell.SimulationScreen)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan session.Event, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		pollEvents(ctx, term.screen, events)
	}()

	sim.InjectKey(tcell.KeyRune, 'C', tcell.ModNone)

	deadline := time.After(2 * time.Second)
	for found := false; !found; {
		select {
		case ev := <-events:
			found = ev.Kind == session.EventKey && ev.Key == "c"
		case <-deadline:
			t.Fatal("Key event never forwarded")
		}
	}

	// Finalizing the screen ends the poll loop
	_ = term.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pollEvents did not exit after Stop")
	}
}
