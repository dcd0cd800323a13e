package main

import (
	"sync"
	"time"

	"github.com/sparques/irmouse/mouse"
	"github.com/sparques/irmouse/rc5"
	"github.com/sparques/irmouse/sim"
)

// pad drives a bench in real time and keeps the virtual pointer the host
// would see. All methods are safe for concurrent use.
type pad struct {
	mu    sync.Mutex
	bench *sim.Bench
	start time.Time

	// next is the earliest time the next frame may start
	next    time.Duration
	lastCmd rc5.Command
	toggle  bool
	pressed bool

	x, y    int
	scroll  int
	buttons uint8
	clicks  int
	last    mouse.Report
	onMove  func()
}

func newPad(cfg sim.Config, onMove func()) *pad {
	p := &pad{
		bench:  sim.New(cfg),
		start:  time.Now(),
		onMove: onMove,
	}
	p.bench.Transport.OnSubmit = p.report
	return p
}

// report runs on the bench, under p.mu.
func (p *pad) report(e sim.Emission) {
	r := e.Report
	p.x += int(r.DX)
	// positive dy moves up, screen rows grow downwards
	p.y -= int(r.DY)
	p.scroll += int(r.Wheel)
	if r.Buttons != 0 && p.buttons == 0 {
		p.clicks++
	}
	p.buttons = r.Buttons
	p.last = r
	if p.onMove != nil {
		p.onMove()
	}
}

// press queues one frame of cmd. Frames never overlap; a press arriving
// while the line is busy is queued right behind the frame in flight, and
// dropped if that would put it more than one frame behind.
func (p *pad) press(cmd rc5.Command) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.bench.Clock.Now()
	at := max(now, p.next)
	if at-now > rc5.FramePeriod {
		return false
	}
	// a held key keeps its toggle, a new press flips it
	if !p.pressed || cmd != p.lastCmd || now-p.next > rc5.FramePeriod {
		p.toggle = !p.toggle
	}
	p.bench.Transmit(at, rc5.NewFrame(p.toggle, rc5.AcceptedSystem, cmd))
	p.next = at + rc5.FramePeriod
	p.lastCmd = cmd
	p.pressed = true
	return true
}

// advance runs the bench up to the wall clock.
func (p *pad) advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bench.RunUntil(time.Since(p.start))
}

type padView struct {
	X, Y     int
	Scroll   int
	Buttons  uint8
	Clicks   int
	Last     mouse.Report
	Device   mouse.Snapshot
	Decoder  rc5.Stats
	Elapsed  time.Duration
	Reports  int
	Overruns int
}

func (p *pad) view() padView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return padView{
		X:        p.x,
		Y:        p.y,
		Scroll:   p.scroll,
		Buttons:  p.buttons,
		Clicks:   p.clicks,
		Last:     p.last,
		Device:   p.bench.Device.Snapshot(),
		Decoder:  p.bench.Decoder.Stats(),
		Elapsed:  p.bench.Clock.Now(),
		Reports:  len(p.bench.Emissions()),
		Overruns: p.bench.Transport.Overruns(),
	}
}
