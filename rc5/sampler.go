package rc5

import (
	"time"

	"github.com/sparques/irmouse"
)

// ConfirmLevel reads line up to times times, waiting spacing between reads,
// and reports whether every read saw level. It gives up on the first read
// that disagrees.
func ConfirmLevel(line irmouse.Line, d irmouse.Delayer, level bool, times int, spacing time.Duration) bool {
	for i := 0; i < times; i++ {
		if i > 0 {
			d.Delay(spacing)
		}
		if line.Get() != level {
			return false
		}
	}
	return true
}

// Sampler times the sample instants of one frame. It must only be used from
// the receiver interrupt.
type Sampler struct {
	line  irmouse.Line
	timer irmouse.CompareTimer
	delay irmouse.Delayer
}

func NewSampler(line irmouse.Line, timer irmouse.CompareTimer, delay irmouse.Delayer) *Sampler {
	return &Sampler{
		line:  line,
		timer: timer,
		delay: delay,
	}
}

// ConfirmEdge reports whether the line is still low after the edge that
// triggered the interrupt; a short glitch fails it.
func (s *Sampler) ConfirmEdge() bool {
	if !ConfirmLevel(s.line, s.delay, false, DebounceReads, DebounceSpacing) {
		return false
	}
	s.delay.Delay(DebounceSpacing)
	return true
}

// SampleBit waits for the next compare match and samples one cell. A cell
// only reads as one if the high level holds for all confirmation reads.
func (s *Sampler) SampleBit() bool {
	s.timer.Wait()
	return ConfirmLevel(s.line, s.delay, true, DebounceReads, DebounceSpacing)
}

// Capture runs a full decode pass. ok is false if the edge was noise, in
// which case nothing was sampled.
func (s *Sampler) Capture() (f Frame, ok bool) {
	if !s.ConfirmEdge() {
		return 0, false
	}
	s.delay.Delay(Lead)
	s.timer.Arm(BitPeriod)
	for i := 0; i < SampleBits; i++ {
		f <<= 1
		if s.SampleBit() {
			f++
		}
	}
	return f, true
}
