package mouse

import (
	"errors"
	"time"

	"github.com/sparques/irmouse/rc5"
)

// Remote buttons, as register values of the frames they send.
const (
	CmdRightClick rc5.Command = 0
	CmdDownLeft   rc5.Command = 1
	CmdDown       rc5.Command = 2
	CmdDownRight  rc5.Command = 3
	CmdLeft       rc5.Command = 4
	CmdLeftClick  rc5.Command = 5
	CmdRight      rc5.Command = 6
	CmdUpLeft     rc5.Command = 7
	CmdUp         rc5.Command = 8
	CmdUpRight    rc5.Command = 9
	CmdWheelUp    rc5.Command = 16
	CmdWheelDown  rc5.Command = 17
)

// Kind tells how the dispatch loop treats a report.
type Kind uint8

const (
	// KindMotion reports are sent once.
	KindMotion Kind = iota + 1
	// KindClick reports are followed by an all-zero release report.
	KindClick
)

// State is the state of the velocity ramp.
type State uint8

const (
	Idle State = iota
	Tracking
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	}
	return "unknown"
}

// Config tunes the velocity ramp and the idle reset.
type Config struct {
	// InitialVelocity is the pointer step of a fresh command.
	InitialVelocity int
	// VelocityStep is added each time the same command repeats.
	VelocityStep int
	// VelocityLimit is the largest velocity kept as is.
	VelocityLimit int
	// VelocitySentinel replaces a velocity past VelocityLimit unless
	// ClampVelocity is set. It is encoded truncated to 8 bits.
	VelocitySentinel int
	// ClampVelocity holds the velocity at VelocityLimit instead.
	ClampVelocity bool

	// IdleReload is loaded into the idle countdown on every report sent.
	IdleReload int
	// IdleThreshold is the countdown value below which the ramp resets.
	IdleThreshold int

	// ClickDebounce is waited in the receiver interrupt after a button
	// click so the auto-repeat of the same key is swallowed.
	ClickDebounce time.Duration
}

var DefaultConfig = Config{
	InitialVelocity:  3,
	VelocityStep:     10,
	VelocityLimit:    127,
	VelocitySentinel: 327,
	IdleReload:       20000,
	IdleThreshold:    5,
	ClickDebounce:    50 * time.Millisecond,
}

var (
	ErrVelocity = errors.New("initial velocity must be within 1 and the velocity limit")
	ErrIdle     = errors.New("idle reload must exceed the idle threshold")
)

func (c Config) Validate() error {
	if c.InitialVelocity < 1 || c.InitialVelocity > c.VelocityLimit || c.VelocityLimit > 127 {
		return ErrVelocity
	}
	if c.IdleThreshold < 1 || c.IdleReload <= c.IdleThreshold {
		return ErrIdle
	}
	return nil
}

// Motion turns commands into reports and ramps the pointer speed while the
// same command keeps arriving.
type Motion struct {
	cfg      Config
	last     rc5.Command
	tracking bool
	velocity int
	idle     int
}

func NewMotion(cfg Config) *Motion {
	return &Motion{
		cfg:      cfg,
		velocity: cfg.InitialVelocity,
		idle:     cfg.IdleReload,
	}
}

func (m *Motion) State() State {
	if m.tracking {
		return Tracking
	}
	return Idle
}

// Last returns the tracked command; ok is false when idle.
func (m *Motion) Last() (cmd rc5.Command, ok bool) {
	return m.last, m.tracking
}

func (m *Motion) Velocity() int {
	return m.velocity
}

// Idle returns the idle countdown.
func (m *Motion) Idle() int {
	return m.idle
}

// Translate maps cmd to a report. ok is false for commands without a
// mapping; those leave the state untouched.
func (m *Motion) Translate(cmd rc5.Command) (r Report, kind Kind, ok bool) {
	if !Mapped(cmd) {
		return Report{}, 0, false
	}
	m.ramp(cmd)
	v := int8(m.velocity)

	kind = KindMotion
	switch cmd {
	case CmdUp:
		r.DY = v
	case CmdDown:
		r.DY = -v
	case CmdLeft:
		r.DX = -v
	case CmdRight:
		r.DX = v
	case CmdUpLeft:
		r.DX, r.DY = -v, v
	case CmdUpRight:
		r.DX, r.DY = v, v
	case CmdDownLeft:
		r.DX, r.DY = -v, -v
	case CmdDownRight:
		r.DX, r.DY = v, -v
	case CmdLeftClick:
		r.Buttons, kind = ButtonLeft, KindClick
	case CmdRightClick:
		r.Buttons, kind = ButtonRight, KindClick
	case CmdWheelUp:
		r.Wheel, kind = 1, KindClick
	case CmdWheelDown:
		r.Wheel, kind = -1, KindClick
	}
	return r, kind, true
}

func (m *Motion) ramp(cmd rc5.Command) {
	if m.tracking && cmd == m.last {
		m.velocity += m.cfg.VelocityStep
		if m.velocity > m.cfg.VelocityLimit {
			if m.cfg.ClampVelocity {
				m.velocity = m.cfg.VelocityLimit
			} else {
				m.velocity = m.cfg.VelocitySentinel
			}
		}
	} else {
		m.velocity = m.cfg.InitialVelocity
	}
	m.last = cmd
	m.tracking = true
}

// Tick counts down one dispatch iteration. When the countdown drops below
// the threshold the ramp goes back to idle once; the countdown then stays
// parked at zero until the next report is sent.
func (m *Motion) Tick() {
	if m.idle <= 0 {
		return
	}
	m.idle--
	if m.idle < m.cfg.IdleThreshold {
		m.Reset()
		m.idle = 0
	}
}

// Touch reloads the idle countdown.
func (m *Motion) Touch() {
	m.idle = m.cfg.IdleReload
}

// Reset forgets the tracked command.
func (m *Motion) Reset() {
	m.tracking = false
	m.last = 0
	m.velocity = m.cfg.InitialVelocity
}

// Mapped reports whether cmd has a report mapping.
func Mapped(cmd rc5.Command) bool {
	switch cmd {
	case CmdUp, CmdDown, CmdLeft, CmdRight,
		CmdUpLeft, CmdUpRight, CmdDownLeft, CmdDownRight,
		CmdLeftClick, CmdRightClick, CmdWheelUp, CmdWheelDown:
		return true
	}
	return false
}

// IsButton reports whether cmd presses a mouse button, as opposed to the
// wheel or the pointer.
func IsButton(cmd rc5.Command) bool {
	return cmd == CmdLeftClick || cmd == CmdRightClick
}
