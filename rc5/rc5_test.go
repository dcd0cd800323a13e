package rc5

import (
	"testing"
	"time"
)

func TestFrameFields(t *testing.T) {
	f := NewFrame(true, 0b1101, 17)
	if !f.Valid() {
		t.Fatalf("%#x not valid", f)
	}
	if f.Command() != 17 {
		t.Fatalf("Command = %d, want 17", f.Command())
	}
	if !f.Toggle() {
		t.Fatal("toggle lost")
	}
	if f.System() != 0b1101 {
		t.Fatalf("System = %#b, want 0b1101", f.System())
	}
}

func TestFrameValid(t *testing.T) {
	for sys := uint8(0); sys < 16; sys++ {
		for _, toggle := range []bool{false, true} {
			f := NewFrame(toggle, sys, 8)
			want := sys&AcceptedSystem == AcceptedSystem
			if f.Valid() != want {
				t.Errorf("system %#b toggle %v: Valid = %v, want %v", sys, toggle, f.Valid(), want)
			}
		}
	}

	good := NewFrame(false, AcceptedSystem, 8)
	for _, bit := range []uint{11, 12} {
		if f := good | 1<<bit; f.Valid() {
			t.Errorf("field bit %d set but frame valid", bit)
		}
	}
}

func TestCommandIgnoresUpperBits(t *testing.T) {
	f := NewFrame(false, AcceptedSystem, 0xFF)
	if f.Command() != 63 {
		t.Fatalf("Command = %d, want 63", f.Command())
	}
}

func TestLevelsAreManchester(t *testing.T) {
	f := NewFrame(false, AcceptedSystem, 42)
	levels := f.Levels()
	if len(levels) != 2*(SampleBits+1) {
		t.Fatalf("len = %d", len(levels))
	}
	if !levels[0] || levels[1] {
		t.Fatal("start bit does not end its first half with a falling edge")
	}
	for i := 2; i < len(levels); i += 2 {
		if levels[i] == levels[i+1] {
			t.Fatalf("cell %d has no mid-cell transition", i/2)
		}
	}
}

func TestMarshalFrame(t *testing.T) {
	f := NewFrame(true, AcceptedSystem, 5)
	pairs := f.MarshalFrame()

	var total, marks time.Duration
	for i, p := range pairs {
		if p[0] <= 0 {
			t.Fatalf("pair %d has no mark", i)
		}
		if p[0]%HalfBit != 0 || (i < len(pairs)-1 && p[1]%HalfBit != 0) {
			t.Fatalf("pair %d not on half bit boundaries: %v", i, p)
		}
		total += p[0] + p[1]
		marks += p[0]
	}
	if total != FramePeriod {
		t.Fatalf("frame spans %v, want %v", total, FramePeriod)
	}

	lows := time.Duration(0)
	for _, level := range f.Levels() {
		if !level {
			lows += HalfBit
		}
	}
	if marks != lows {
		t.Fatalf("marks = %v, low half bits = %v", marks, lows)
	}
}
