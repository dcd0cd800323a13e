package irmouse

import "time"

const (
	// Freq36Khz is the carrier used by RC5 remotes
	Freq36Khz = 36000
	// Freq38Khz is the most commonly used frequency for IR remotes
	Freq38Khz = 38000
)

// TimePair encodes two durations used to encode an on-off or off-on amount of time.
// For transmitted frames index 0 is the mark (carrier on) and index 1 the space.
type TimePair [2]time.Duration

// FrameMarshaller defines an interface for marshalling data to slice of TimePairs
type FrameMarshaller interface {
	MarshalFrame() []TimePair
}

// Line is the output of a demodulating IR receiver. Most receivers idle high
// and pull the line low while a carrier burst is seen.
type Line interface {
	Get() bool
}

// Delayer busy-waits for short fixed intervals. It is safe to call from
// interrupt context.
type Delayer interface {
	Delay(time.Duration)
}

// CompareTimer is a free running timer with a compare-match flag.
type CompareTimer interface {
	// Arm sets the compare period and restarts the count from zero.
	Arm(period time.Duration)
	// Wait spins until the compare-match flag is set and then clears it.
	// If a match already happened since the last Wait, it returns at once.
	Wait()
}

// Watchdog is the keepalive obligation of the main loop and of every decode
// pass.
type Watchdog interface {
	Reset()
}

// EdgeHandler is called from interrupt context once per falling edge.
type EdgeHandler interface {
	HandleFallingEdge()
}

// EdgeArmer is implemented by lines that latch a single pending edge and need
// it cleared at the end of an interrupt pass.
type EdgeArmer interface {
	ClearPending()
}

type nopWatchdog struct{}

func (nopWatchdog) Reset() {}

// NopWatchdog is a Watchdog that does nothing.
var NopWatchdog Watchdog = nopWatchdog{}
