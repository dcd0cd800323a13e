package sim

import (
	"sort"
	"time"

	"github.com/sparques/irmouse"
)

// span is a stretch of time the receiver line is pulled low.
type span struct {
	start, end time.Duration
}

// Line is a simulated active-low receiver output. It idles high and latches
// one pending falling edge until ClearPending is called.
type Line struct {
	clock   *Clock
	low     []span
	cleared time.Duration
}

func NewLine(clock *Clock) *Line {
	return &Line{
		clock:   clock,
		cleared: -1,
	}
}

// Get implements irmouse.Line.
func (l *Line) Get() bool {
	return l.LevelAt(l.clock.Now())
}

// LevelAt returns the line level at t.
func (l *Line) LevelAt(t time.Duration) bool {
	i := sort.Search(len(l.low), func(i int) bool { return l.low[i].end > t })
	if i < len(l.low) && l.low[i].start <= t {
		return false
	}
	return true
}

// Schedule replays pairs on the line starting at at: every mark pulls the
// line low, every space lets it go high.
func (l *Line) Schedule(at time.Duration, pairs ...irmouse.TimePair) {
	t := at
	for _, p := range pairs {
		if p[0] > 0 {
			l.low = append(l.low, span{t, t + p[0]})
		}
		t += p[0] + p[1]
	}
	l.normalize()
}

// Pulse pulls the line low for width starting at at.
func (l *Line) Pulse(at, width time.Duration) {
	l.Schedule(at, irmouse.TimePair{width, 0})
}

// normalize sorts the low spans and merges the ones that touch, so every
// span start is a falling edge.
func (l *Line) normalize() {
	sort.Slice(l.low, func(i, j int) bool { return l.low[i].start < l.low[j].start })
	merged := l.low[:0]
	for _, s := range l.low {
		n := len(merged)
		if n > 0 && s.start <= merged[n-1].end {
			if s.end > merged[n-1].end {
				merged[n-1].end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	l.low = merged
}

// NextEdge returns the first falling edge after the last clear. It may lie
// in the future.
func (l *Line) NextEdge() (time.Duration, bool) {
	i := sort.Search(len(l.low), func(i int) bool { return l.low[i].start > l.cleared })
	if i == len(l.low) {
		return 0, false
	}
	return l.low[i].start, true
}

// ClearPending implements irmouse.EdgeArmer.
func (l *Line) ClearPending() {
	l.cleared = l.clock.Now()
}
