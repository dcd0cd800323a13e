package scenario

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sparques/irmouse/mouse"
	"github.com/sparques/irmouse/rc5"
	"github.com/sparques/irmouse/sim"
)

func TestPlayTestdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no scenarios in testdata")
	}
	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			b := sim.New(sim.DefaultConfig)
			s.Play(b)
			if err := s.Check(b.Reports()); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestParseDurationsAndHex(t *testing.T) {
	s, err := Parse([]byte(`
name: raw
tail: 250ms
system: 13
steps:
  - frame: 0x0308
  - wait: 1.5s
  - glitch: 7us
  - press: 9
    hold: 4
    system: 15
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Tail != 250*time.Millisecond || *s.System != 13 {
		t.Fatalf("header = %+v", s)
	}
	if *s.Steps[0].Frame != 0x0308 {
		t.Fatalf("frame = %#x", *s.Steps[0].Frame)
	}
	if s.Steps[1].Wait != 1500*time.Millisecond || s.Steps[2].Glitch != 7*time.Microsecond {
		t.Fatalf("durations = %v %v", s.Steps[1].Wait, s.Steps[2].Glitch)
	}
	if *s.Steps[3].Press != 9 || s.Steps[3].Hold != 4 || *s.Steps[3].System != 15 {
		t.Fatalf("press = %+v", s.Steps[3])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no steps", "name: empty\n", ErrEmptyScenario},
		{"two actions", "steps:\n  - press: 1\n    wait: 1s\n", ErrStep},
		{"no action", "steps:\n  - hold: 2\n", ErrStep},
		{"command too big", "steps:\n  - press: 64\n", ErrStep},
		{"frame too wide", "steps:\n  - frame: 0x2000\n", ErrStep},
		{"negative wait", "steps:\n  - wait: -1s\n", ErrStep},
		{"system too big", "steps:\n  - press: 1\n    system: 16\n", ErrStep},
		{"hold on frame", "steps:\n  - frame: 1\n    hold: 2\n", ErrStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("steps: [")); err == nil {
		t.Fatal("no error for broken yaml")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Fatal("no error for a missing file")
	}
}

func TestScheduleEnd(t *testing.T) {
	up := uint8(8)
	s := &Scenario{
		Steps: []Step{{Press: &up, Hold: 2}, {Glitch: 5 * time.Microsecond}, {Press: &up}},
		Tail:  time.Millisecond,
	}
	b := sim.New(sim.DefaultConfig)
	end := s.Schedule(b)
	want := 3*rc5.FramePeriod + 5*time.Microsecond + glitchGap + time.Millisecond
	if end != want {
		t.Fatalf("end = %v, want %v", end, want)
	}
}

func TestCheck(t *testing.T) {
	s := &Scenario{Expect: []Report{{DY: 3}, {}}}
	if err := s.Check([]mouse.Report{{DY: 3}, {}}); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if err := s.Check([]mouse.Report{{DY: 3}}); !errors.Is(err, ErrMismatch) {
		t.Fatalf("short: err = %v", err)
	}
	if err := s.Check([]mouse.Report{{DY: 3}, {Buttons: 1}}); !errors.Is(err, ErrMismatch) {
		t.Fatalf("different: err = %v", err)
	}
	if err := (&Scenario{}).Check([]mouse.Report{{DX: 1}}); err != nil {
		t.Fatalf("no expectations: %v", err)
	}
}
