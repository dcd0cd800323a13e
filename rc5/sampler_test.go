package rc5

import (
	"testing"
	"time"
)

// scriptLine returns its levels in order, then stays at the last one.
type scriptLine struct {
	levels []bool
	reads  int
}

func (l *scriptLine) Get() bool {
	i := l.reads
	l.reads++
	if i >= len(l.levels) {
		return l.levels[len(l.levels)-1]
	}
	return l.levels[i]
}

type countDelayer struct {
	total time.Duration
	calls int
}

func (d *countDelayer) Delay(dt time.Duration) {
	d.total += dt
	d.calls++
}

type countTimer struct {
	period time.Duration
	arms   int
	waits  int
}

func (t *countTimer) Arm(p time.Duration) {
	t.period = p
	t.arms++
}

func (t *countTimer) Wait() {
	t.waits++
}

func TestConfirmLevel(t *testing.T) {
	tests := []struct {
		name   string
		levels []bool
		level  bool
		want   bool
		reads  int
	}{
		{"all low", []bool{false, false, false}, false, true, 3},
		{"first read high", []bool{true, false, false}, false, false, 1},
		{"glitch ends on second read", []bool{false, true}, false, false, 2},
		{"high confirmed", []bool{true, true, true}, true, true, 3},
		{"high drops on last read", []bool{true, true, false}, true, false, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := &scriptLine{levels: tt.levels}
			d := &countDelayer{}
			got := ConfirmLevel(line, d, tt.level, 3, DebounceSpacing)
			if got != tt.want {
				t.Fatalf("ConfirmLevel = %v, want %v", got, tt.want)
			}
			if line.reads != tt.reads {
				t.Fatalf("reads = %d, want %d", line.reads, tt.reads)
			}
			if d.calls != tt.reads-1 {
				t.Fatalf("delays = %d, want %d", d.calls, tt.reads-1)
			}
		})
	}
}

func TestCaptureRejectsNoise(t *testing.T) {
	line := &scriptLine{levels: []bool{false, true}}
	timer := &countTimer{}
	s := NewSampler(line, timer, &countDelayer{})

	if _, ok := s.Capture(); ok {
		t.Fatal("Capture accepted a glitch")
	}
	if timer.arms != 0 || timer.waits != 0 {
		t.Fatalf("timer used on noise: arms=%d waits=%d", timer.arms, timer.waits)
	}
}

func TestCaptureShiftsSamples(t *testing.T) {
	// three low reads confirm the edge, then every cell reads high three
	// times (a one) or low once (a zero)
	want := NewFrame(false, AcceptedSystem, 9)
	levels := []bool{false, false, false}
	for bit := SampleBits - 1; bit >= 0; bit-- {
		if (want>>bit)&1 == 1 {
			levels = append(levels, true, true, true)
		} else {
			levels = append(levels, false)
		}
	}
	line := &scriptLine{levels: levels}
	timer := &countTimer{}
	s := NewSampler(line, timer, &countDelayer{})

	got, ok := s.Capture()
	if !ok {
		t.Fatal("Capture rejected the edge")
	}
	if got != want {
		t.Fatalf("Capture = %#x, want %#x", got, want)
	}
	if timer.arms != 1 || timer.period != BitPeriod {
		t.Fatalf("timer armed %d times with %v", timer.arms, timer.period)
	}
	if timer.waits != SampleBits {
		t.Fatalf("waits = %d, want %d", timer.waits, SampleBits)
	}
}

func TestSampleBitNeedsAgreement(t *testing.T) {
	line := &scriptLine{levels: []bool{true, false}}
	s := NewSampler(line, &countTimer{}, &countDelayer{})
	if s.SampleBit() {
		t.Fatal("a high read followed by a low one sampled as one")
	}
}
