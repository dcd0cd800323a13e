// Package scenario loads scripted remote sessions and plays them on a
// simulation bench.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sparques/irmouse/mouse"
	"github.com/sparques/irmouse/rc5"
	"github.com/sparques/irmouse/sim"
)

const (
	// DefaultTail is how long a scenario keeps running after its last step.
	DefaultTail = 500 * time.Millisecond
	// glitchGap separates a glitch from whatever follows it.
	glitchGap = time.Millisecond
)

var (
	ErrEmptyScenario = errors.New("scenario has no steps")
	ErrStep          = errors.New("invalid step")
	ErrMismatch      = errors.New("reports do not match expectation")
)

type Scenario struct {
	Name string `yaml:"name"`
	// System is the system code sent with presses. Defaults to
	// rc5.AcceptedSystem.
	System *uint8        `yaml:"system"`
	Tail   time.Duration `yaml:"tail"`
	Steps  []Step        `yaml:"steps"`
	// Expect, if present, lists every report the host must receive.
	Expect []Report `yaml:"expect"`
}

// Step is one action. Exactly one of Press, Frame, Glitch and Wait is set.
type Step struct {
	// Press sends a command, Hold frames in a row (default 1).
	Press  *uint8  `yaml:"press"`
	Hold   int     `yaml:"hold"`
	System *uint8  `yaml:"system"`
	Frame  *uint16 `yaml:"frame"`
	// Glitch pulls the line low for this long.
	Glitch time.Duration `yaml:"glitch"`
	Wait   time.Duration `yaml:"wait"`
}

type Report struct {
	Buttons uint8 `yaml:"buttons"`
	DX      int8  `yaml:"dx"`
	DY      int8  `yaml:"dy"`
	Wheel   int8  `yaml:"wheel"`
}

func (r Report) mouse() mouse.Report {
	return mouse.Report{Buttons: r.Buttons, DX: r.DX, DY: r.DY, Wheel: r.Wheel}
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario document.
func Parse(b []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScenario
	}
	if s.System != nil && *s.System > 0xF {
		return fmt.Errorf("system %d: %w", *s.System, ErrStep)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	actions := 0
	if st.Press != nil {
		actions++
		if *st.Press > uint8(rc5.CommandMask) {
			return fmt.Errorf("%w: command %d out of range", ErrStep, *st.Press)
		}
	}
	if st.Frame != nil {
		actions++
		if *st.Frame >= 1<<rc5.SampleBits {
			return fmt.Errorf("%w: frame %#x wider than %d bits", ErrStep, *st.Frame, rc5.SampleBits)
		}
	}
	if st.Glitch != 0 {
		actions++
		if st.Glitch < 0 {
			return fmt.Errorf("%w: negative glitch", ErrStep)
		}
	}
	if st.Wait != 0 {
		actions++
		if st.Wait < 0 {
			return fmt.Errorf("%w: negative wait", ErrStep)
		}
	}
	if actions != 1 {
		return fmt.Errorf("%w: want exactly one of press, frame, glitch, wait", ErrStep)
	}
	if st.Hold < 0 {
		return fmt.Errorf("%w: negative hold", ErrStep)
	}
	if st.Hold > 0 && st.Press == nil {
		return fmt.Errorf("%w: hold without press", ErrStep)
	}
	if st.System != nil && *st.System > 0xF {
		return fmt.Errorf("%w: system %d out of range", ErrStep, *st.System)
	}
	return nil
}

// Schedule places every step on the bench line, starting at the bench's
// current time, and returns the time the scenario ends, tail included.
func (s *Scenario) Schedule(b *sim.Bench) time.Duration {
	system := uint8(rc5.AcceptedSystem)
	if s.System != nil {
		system = *s.System
	}

	t := b.Clock.Now()
	toggle := false
	for _, st := range s.Steps {
		switch {
		case st.Press != nil:
			sys := system
			if st.System != nil {
				sys = *st.System
			}
			f := rc5.NewFrame(toggle, sys, rc5.Command(*st.Press))
			for i := 0; i < max(st.Hold, 1); i++ {
				b.Transmit(t, f)
				t += rc5.FramePeriod
			}
			// the toggle flips on every new press, not on repeats
			toggle = !toggle
		case st.Frame != nil:
			b.Transmit(t, rc5.Frame(*st.Frame))
			t += rc5.FramePeriod
		case st.Glitch > 0:
			b.Glitch(t, st.Glitch)
			t += st.Glitch + glitchGap
		default:
			t += st.Wait
		}
	}

	tail := s.Tail
	if tail <= 0 {
		tail = DefaultTail
	}
	return t + tail
}

// Play schedules the scenario and runs the bench to its end.
func (s *Scenario) Play(b *sim.Bench) {
	b.RunUntil(s.Schedule(b))
}

// Check compares reports with Expect. Scenarios without expectations always
// pass.
func (s *Scenario) Check(reports []mouse.Report) error {
	if s.Expect == nil {
		return nil
	}
	if len(reports) != len(s.Expect) {
		return fmt.Errorf("%w: got %d reports, want %d", ErrMismatch, len(reports), len(s.Expect))
	}
	for i, want := range s.Expect {
		if reports[i] != want.mouse() {
			return fmt.Errorf("%w: report %d is %+v, want %+v", ErrMismatch, i+1, reports[i], want.mouse())
		}
	}
	return nil
}
