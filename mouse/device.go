package mouse

import (
	"sync"

	"github.com/sparques/irmouse"
	"github.com/sparques/irmouse/rc5"
)

// Transport is the host link. Poll must be called every loop iteration to
// keep it alive; Submit may only be called when IsReady reports true.
type Transport interface {
	Poll()
	IsReady() bool
	Submit(report []byte)
}

// Device owns the state shared by the receiver interrupt and the main loop.
// HandleCommand is the interrupt side, Tick the main loop side. Both run
// under the device lock.
type Device struct {
	cfg       Config
	motion    *Motion
	mailbox   Mailbox
	mu        sync.Locker
	transport Transport
	watchdog  irmouse.Watchdog
	delay     irmouse.Delayer

	sent int
}

// Option configures a Device.
type Option func(*Device)

// WithLocker sets the critical section guarding the shared state. Firmware
// passes a locker that masks the receiver interrupt.
func WithLocker(l sync.Locker) Option {
	return func(d *Device) { d.mu = l }
}

// WithWatchdog sets the watchdog fed on every Tick.
func WithWatchdog(w irmouse.Watchdog) Option {
	return func(d *Device) { d.watchdog = w }
}

// WithDelayer sets the delayer used for the click debounce. Without one the
// debounce is skipped.
func WithDelayer(dl irmouse.Delayer) Option {
	return func(d *Device) { d.delay = dl }
}

func NewDevice(cfg Config, transport Transport, opts ...Option) *Device {
	d := &Device{
		cfg:       cfg,
		motion:    NewMotion(cfg),
		mu:        &sync.Mutex{},
		transport: transport,
		watchdog:  irmouse.NopWatchdog,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// HandleCommand translates cmd and makes the result the pending report.
// It is meant as the rc5.StateMachine command handler.
func (d *Device) HandleCommand(cmd rc5.Command) {
	d.mu.Lock()
	r, kind, ok := d.motion.Translate(cmd)
	if ok {
		d.mailbox.Post(r, kind)
	}
	d.mu.Unlock()

	if ok && IsButton(cmd) && d.delay != nil {
		d.delay.Delay(d.cfg.ClickDebounce)
	}
}

// Tick runs one iteration of the dispatch loop.
func (d *Device) Tick() {
	d.watchdog.Reset()
	d.transport.Poll()

	d.mu.Lock()
	d.motion.Tick()
	if !d.transport.IsReady() || !d.mailbox.Pending() {
		d.mu.Unlock()
		return
	}
	r, kind, _ := d.mailbox.Take()
	d.motion.Touch()
	if kind == KindClick {
		d.mailbox.Post(Report{}, KindMotion)
	}
	d.mu.Unlock()

	buf := r.Bytes()
	d.transport.Submit(buf[:])
	d.sent++
}

// Sent returns the number of reports submitted.
func (d *Device) Sent() int {
	return d.sent
}

// Snapshot is a copy of the shared state.
type Snapshot struct {
	State    State
	Last     rc5.Command
	Velocity int
	Idle     int
	Pending  bool
	Report   Report
}

// Snapshot copies the shared state under the device lock.
func (d *Device) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	last, _ := d.motion.Last()
	r, _, pending := d.mailbox.Peek()
	return Snapshot{
		State:    d.motion.State(),
		Last:     last,
		Velocity: d.motion.Velocity(),
		Idle:     d.motion.Idle(),
		Pending:  pending,
		Report:   r,
	}
}
