package sim

import (
	"time"

	"github.com/sparques/irmouse/mouse"
)

// USBInterval is the polling interval a host grants a low speed interrupt
// endpoint.
const USBInterval = 10 * time.Millisecond

// Emission is a report the transport handed to the host.
type Emission struct {
	At     time.Duration
	Report mouse.Report
}

// Transport is a simulated interrupt endpoint. After every submit it is busy
// until the host polls it again, Interval later.
type Transport struct {
	Interval time.Duration
	// OnSubmit, if set, is called for every emission.
	OnSubmit func(Emission)

	clock     *Clock
	next      time.Duration
	polls     int
	overruns  int
	emissions []Emission
}

func NewTransport(clock *Clock, interval time.Duration) *Transport {
	return &Transport{
		Interval: interval,
		clock:    clock,
	}
}

func (t *Transport) Poll() {
	t.polls++
}

func (t *Transport) IsReady() bool {
	return t.clock.Now() >= t.next
}

func (t *Transport) Submit(report []byte) {
	if !t.IsReady() {
		t.overruns++
	}
	var buf [mouse.ReportSize]byte
	copy(buf[:], report)
	e := Emission{At: t.clock.Now(), Report: mouse.ParseReport(buf)}
	t.emissions = append(t.emissions, e)
	t.next = t.clock.Now() + t.Interval
	if t.OnSubmit != nil {
		t.OnSubmit(e)
	}
}

func (t *Transport) Emissions() []Emission {
	return t.emissions
}

func (t *Transport) Polls() int {
	return t.polls
}

// Overruns counts submits made while the endpoint was busy.
func (t *Transport) Overruns() int {
	return t.overruns
}

// Watchdog counts resets.
type Watchdog struct {
	Resets int
}

func (w *Watchdog) Reset() {
	w.Resets++
}
