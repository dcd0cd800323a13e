/*
Package rc5 decodes Philips RC5 infrared frames by sampling the receiver line
at fixed instants after the falling edge that opens a frame.

## Timing

An RC5 bit cell is 1.778ms long, split in two halves of 889µs. Each cell
carries a Manchester transition in its middle. The first start bit ends its
first half with a falling edge on the (active low) receiver line, which is
what triggers a decode pass. From then on, every cell is sampled once in its
second half, 160µs past the mid-cell transition, giving 13 samples.

## Register

The 13 samples are shifted in MSB first, so the register reads

	12 11 10  9  8  7  6  5  4  3  2  1  0
	F  F  T   S  S  s  s  C  C  C  C  C  C

	F - field slots, both must sample low
	T - toggle, ignored
	S - fixed system code bits, both must sample high
	s - free system code bits
	C - command

Values are the sampled line levels, not the logical bits sent by the remote.
Button codes used elsewhere in this module are register values.
*/
package rc5

import (
	"time"

	"github.com/sparques/irmouse"
)

const (
	HalfBit     = 889 * time.Microsecond
	BitPeriod   = 2 * HalfBit
	FramePeriod = 64 * BitPeriod // about 114ms between repeats

	// DebounceSpacing is the wait between confirmation reads of one level.
	DebounceSpacing = 10 * time.Microsecond
	// DebounceReads is how many reads must agree, first read included.
	DebounceReads = 3
	// Lead is waited after edge confirmation and before the sample timer is armed.
	Lead = 130 * time.Microsecond

	// SampleBits is the number of cells sampled after the triggering edge.
	SampleBits = 13
	// FrameLength is the time from the triggering edge to the end of the
	// last cell.
	FrameLength = HalfBit + SampleBits*BitPeriod

	FieldMask   Frame = 0b1111_1011_0000_0000
	FieldValue  Frame = 0b0000_0011_0000_0000
	ToggleMask  Frame = 0b0000_0100_0000_0000
	SystemMask  Frame = 0b0000_0011_1100_0000
	CommandMask Frame = 0b0000_0000_0011_1111

	// AcceptedSystem is the smallest system code that passes FieldMask.
	AcceptedSystem = 0b1100
)

// Command is the 6-bit command field of a frame.
type Command uint8

// Frame is the sample register built during one decode pass.
type Frame uint16

// NewFrame assembles the register a receiver would capture for the given
// fields. Only the low four bits of system and six bits of cmd are used.
func NewFrame(toggle bool, system uint8, cmd Command) Frame {
	f := Frame(system&0xF)<<6 | Frame(cmd)&CommandMask
	if toggle {
		f |= ToggleMask
	}
	return f
}

// Valid reports whether the fixed field and system bits are as expected.
func (f Frame) Valid() bool {
	return f&FieldMask == FieldValue
}

func (f Frame) Command() Command {
	return Command(f & CommandMask)
}

func (f Frame) Toggle() bool {
	return f&ToggleMask != 0
}

func (f Frame) System() uint8 {
	return uint8((f & SystemMask) >> 6)
}

// Levels returns the line level of every half bit from the start of the
// first start bit to the end of the last sampled cell. The register bit is
// the level of the second half of its cell.
func (f Frame) Levels() []bool {
	out := make([]bool, 0, 2*(SampleBits+1))
	// start bit: idle level, then the falling edge
	out = append(out, true, false)
	for bit := SampleBits - 1; bit >= 0; bit-- {
		b := (f>>bit)&1 == 1
		out = append(out, !b, b)
	}
	return out
}

// MarshalFrame implements irmouse.FrameMarshaller. Pairs start with the mark
// that opens the frame; the final space pads the frame out to FramePeriod.
func (f Frame) MarshalFrame() []irmouse.TimePair {
	levels := f.Levels()
	// drop the leading idle half bit; the frame starts with the first mark
	levels = levels[1:]

	var (
		out   []irmouse.TimePair
		pair  irmouse.TimePair
		total time.Duration
	)
	for i, level := range levels {
		if !level {
			// mark; a mark after a space starts a new pair
			if i > 0 && levels[i-1] {
				out = append(out, pair)
				pair = irmouse.TimePair{}
			}
			pair[0] += HalfBit
		} else {
			pair[1] += HalfBit
		}
		total += HalfBit
	}
	// time from the falling edge to the next frame's falling edge
	pair[1] += FramePeriod - total
	out = append(out, pair)
	return out
}
