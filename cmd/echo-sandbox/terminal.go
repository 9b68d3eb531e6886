package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/echo-sandbox/core"
)

// terminal owns the tcell screen as a hub service
type terminal struct {
	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	finiOnce  sync.Once
}

func newTerminal() *terminal {
	return &terminal{newScreen: tcell.NewScreen}
}

func (t *terminal) Name() string           { return "terminal" }
func (t *terminal) Dependencies() []string { return nil }

func (t *terminal) Start() error {
	screen, err := t.newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.RegisterCrashTerminal(screen)
	screen.HideCursor()
	screen.Clear()
	t.screen = screen
	return nil
}

// Stop restores the terminal; PollEvent returns nil afterwards
func (t *terminal) Stop() error {
	if t.screen == nil {
		return nil
	}
	t.finiOnce.Do(func() {
		core.RegisterCrashTerminal(nil)
		t.screen.Fini()
	})
	return nil
}
