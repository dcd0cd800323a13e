package sim

import (
	"time"

	"github.com/sparques/irmouse"
	"github.com/sparques/irmouse/mouse"
	"github.com/sparques/irmouse/rc5"
)

// LoopCost is the virtual time one dispatch loop iteration takes.
const LoopCost = 20 * time.Microsecond

type Config struct {
	Motion      mouse.Config
	LoopCost    time.Duration
	USBInterval time.Duration
}

var DefaultConfig = Config{
	Motion:      mouse.DefaultConfig,
	LoopCost:    LoopCost,
	USBInterval: USBInterval,
}

// Bench wires a simulated receiver, the decoder, the mouse device and a
// simulated host link together. It is not safe for concurrent use.
type Bench struct {
	Clock     *Clock
	Line      *Line
	Timer     *Timer
	Transport *Transport
	Watchdog  *Watchdog
	Decoder   *rc5.StateMachine
	Device    *mouse.Device
	Rx        *irmouse.RxDevice

	loopCost time.Duration
	ticks    int
}

func New(cfg Config) *Bench {
	if cfg.LoopCost <= 0 {
		cfg.LoopCost = LoopCost
	}
	if cfg.USBInterval <= 0 {
		cfg.USBInterval = USBInterval
	}

	b := &Bench{
		Clock:    &Clock{},
		Watchdog: &Watchdog{},
		loopCost: cfg.LoopCost,
	}
	b.Line = NewLine(b.Clock)
	b.Timer = NewTimer(b.Clock)
	b.Transport = NewTransport(b.Clock, cfg.USBInterval)
	b.Device = mouse.NewDevice(cfg.Motion, b.Transport,
		mouse.WithWatchdog(b.Watchdog),
		mouse.WithDelayer(b.Clock),
	)
	sampler := rc5.NewSampler(b.Line, b.Timer, b.Clock)
	b.Decoder = rc5.NewStateMachine(sampler, b.Watchdog, b.Device.HandleCommand)
	b.Rx = irmouse.NewRxDevice(b.Line, b.Decoder)
	return b
}

// Transmit schedules fm on the receiver line, its first mark starting at at.
func (b *Bench) Transmit(at time.Duration, fm irmouse.FrameMarshaller) {
	b.Line.Schedule(at, fm.MarshalFrame()...)
}

// Glitch schedules a short low pulse of the given width.
func (b *Bench) Glitch(at, width time.Duration) {
	b.Line.Pulse(at, width)
}

// RunUntil runs the dispatch loop until the clock reaches t. Falling edges
// interrupt the loop at the instant they happen.
func (b *Bench) RunUntil(t time.Duration) {
	for b.Clock.Now() < t {
		now := b.Clock.Now()
		if e, ok := b.Line.NextEdge(); ok && e < t && e <= now+b.loopCost {
			b.Clock.AdvanceTo(e)
			b.Rx.HandleInterrupt()
			continue
		}
		b.Device.Tick()
		b.ticks++
		b.Clock.Delay(b.loopCost)
	}
}

// Run runs the bench for d.
func (b *Bench) Run(d time.Duration) {
	b.RunUntil(b.Clock.Now() + d)
}

func (b *Bench) Emissions() []Emission {
	return b.Transport.Emissions()
}

// Reports returns the emitted reports without their timestamps.
func (b *Bench) Reports() []mouse.Report {
	out := make([]mouse.Report, 0, len(b.Transport.Emissions()))
	for _, e := range b.Transport.Emissions() {
		out = append(out, e.Report)
	}
	return out
}

// Ticks returns how many dispatch loop iterations ran.
func (b *Bench) Ticks() int {
	return b.ticks
}
