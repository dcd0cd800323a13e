// rc5pad is a terminal remote control: the keypad sends RC5 frames into the
// simulated receiver and the reports the host gets move a pointer on screen.
//
//	7 8 9     up-left  up    up-right
//	4 5 6     left     click right
//	1 2 3     down-left down down-right
//	0         right click
//	PgUp/PgDn wheel
//	q, Esc    quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/sparques/irmouse/mouse"
	"github.com/sparques/irmouse/rc5"
	"github.com/sparques/irmouse/sim"
)

const frameRate = 30 * time.Millisecond

var errQuit = errors.New("quit")

func main() {
	var (
		logPath string
		clamp   bool
	)
	flag.StringVar(&logPath, "log", "", "write debug log to this file")
	flag.BoolVar(&clamp, "clamp", false, "clamp the pointer velocity instead of jumping to the sentinel")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rc5pad: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cfg := sim.DefaultConfig
	cfg.Motion.ClampVelocity = clamp

	if err := run(context.Background(), logger, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "rc5pad: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg sim.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	redraw := func() {
		// PostEvent fails when the queue is full; a redraw is already due then
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
	p := newPad(cfg, redraw)
	w, h := screen.Size()
	p.x, p.y = w/2, h/2

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticker := time.NewTicker(frameRate)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				p.advance()
				redraw()
			}
		}
	})
	g.Go(func() error {
		for {
			if ctx.Err() != nil {
				return nil
			}
			switch ev := screen.PollEvent().(type) {
			case nil:
				return nil
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				cmd, ok, quit := keyCommand(ev)
				if quit {
					return errQuit
				}
				if ok && !p.press(cmd) {
					logger.Debug("frame dropped, line busy", "cmd", cmd)
				} else if ok {
					logger.Debug("frame sent", "cmd", cmd)
				}
			case *tcell.EventInterrupt:
				draw(screen, p.view())
			}
		}
	})

	err = g.Wait()
	v := p.view()
	logger.Info("session ended",
		"reports", v.Reports,
		"edges", v.Decoder.Edges,
		"accepted", v.Decoder.Accepted,
		"rejected", v.Decoder.Rejected,
		"noise", v.Decoder.Noise,
	)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func keyCommand(ev *tcell.EventKey) (cmd rc5.Command, ok, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, false, true
	case tcell.KeyUp:
		return mouse.CmdUp, true, false
	case tcell.KeyDown:
		return mouse.CmdDown, true, false
	case tcell.KeyLeft:
		return mouse.CmdLeft, true, false
	case tcell.KeyRight:
		return mouse.CmdRight, true, false
	case tcell.KeyEnter:
		return mouse.CmdLeftClick, true, false
	case tcell.KeyPgUp:
		return mouse.CmdWheelUp, true, false
	case tcell.KeyPgDn:
		return mouse.CmdWheelDown, true, false
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'q':
			return 0, false, true
		case r >= '0' && r <= '9':
			return rc5.Command(r - '0'), true, false
		}
	}
	return 0, false, false
}

func draw(s tcell.Screen, v padView) {
	s.Clear()
	w, h := s.Size()
	if w < 1 || h < 3 {
		s.Show()
		return
	}

	x := min(max(v.X, 0), w-1)
	y := min(max(v.Y, 2), h-1)
	cursor := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	ch := '+'
	switch {
	case v.Buttons&mouse.ButtonLeft != 0:
		ch, cursor = 'L', cursor.Foreground(tcell.ColorRed)
	case v.Buttons&mouse.ButtonRight != 0:
		ch, cursor = 'R', cursor.Foreground(tcell.ColorBlue)
	}
	s.SetContent(x, y, ch, nil, cursor)

	status := fmt.Sprintf("t=%v %s v=%d idle=%d  last=[%d %d %d %d]  clicks=%d scroll=%d",
		v.Elapsed.Truncate(time.Millisecond), v.Device.State, v.Device.Velocity, v.Device.Idle,
		v.Last.Buttons, v.Last.DX, v.Last.DY, v.Last.Wheel, v.Clicks, v.Scroll)
	decoder := fmt.Sprintf("edges=%d accepted=%d rejected=%d noise=%d reports=%d  (q quits)",
		v.Decoder.Edges, v.Decoder.Accepted, v.Decoder.Rejected, v.Decoder.Noise, v.Reports)
	drawText(s, 0, 0, status, tcell.StyleDefault.Reverse(true))
	drawText(s, 0, 1, decoder, tcell.StyleDefault)
	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
