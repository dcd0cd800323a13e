package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sparques/irmouse/mouse"
	"github.com/sparques/irmouse/rc5"
	"github.com/sparques/irmouse/sim"
)

func TestPadMovesPointer(t *testing.T) {
	moves := 0
	p := newPad(sim.DefaultConfig, func() { moves++ })

	for i := 0; i < 2; i++ {
		if !p.press(mouse.CmdRight) {
			t.Fatalf("press %d dropped", i)
		}
	}
	p.mu.Lock()
	p.bench.Run(time.Second)
	p.mu.Unlock()

	v := p.view()
	if v.X != 3+13 || v.Y != 0 {
		t.Fatalf("pointer at %d,%d", v.X, v.Y)
	}
	if moves != 2 || v.Reports != 2 {
		t.Fatalf("moves = %d reports = %d", moves, v.Reports)
	}
}

func TestPadQueuesAtMostOneFrame(t *testing.T) {
	p := newPad(sim.DefaultConfig, nil)
	if !p.press(mouse.CmdUp) || !p.press(mouse.CmdUp) {
		t.Fatal("first two presses dropped")
	}
	if p.press(mouse.CmdUp) {
		t.Fatal("third press queued more than a frame ahead")
	}
}

func TestPadClickAndScroll(t *testing.T) {
	p := newPad(sim.DefaultConfig, nil)
	p.press(mouse.CmdLeftClick)
	p.press(mouse.CmdWheelUp)
	p.mu.Lock()
	p.bench.Run(time.Second)
	p.mu.Unlock()

	v := p.view()
	if v.Clicks != 1 || v.Scroll != 1 || v.Buttons != 0 {
		t.Fatalf("view = %+v", v)
	}
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		cmd  rc5.Command
		ok   bool
		quit bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, '8', tcell.ModNone), 8, true, false},
		{tcell.NewEventKey(tcell.KeyRune, '0', tcell.ModNone), 0, true, false},
		{tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), mouse.CmdWheelDown, true, false},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), mouse.CmdLeft, true, false},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false, false},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 0, false, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0, false, true},
	}
	for _, tt := range tests {
		cmd, ok, quit := keyCommand(tt.ev)
		if cmd != tt.cmd || ok != tt.ok || quit != tt.quit {
			t.Errorf("%s: got %d %v %v", tt.ev.Name(), cmd, ok, quit)
		}
	}
}
