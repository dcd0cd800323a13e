package irmouse

import "testing"

type levelLine struct {
	level   bool
	cleared int
}

func (l *levelLine) Get() bool { return l.level }

func (l *levelLine) ClearPending() { l.cleared++ }

type countHandler struct {
	edges int
	rx    *RxDevice
}

func (h *countHandler) HandleFallingEdge() {
	h.edges++
	if h.rx != nil {
		// an edge arriving mid-pass must not re-enter the handler
		h.rx.HandleInterrupt()
	}
}

func TestRxDeviceClearsPendingEdge(t *testing.T) {
	line := &levelLine{}
	h := &countHandler{}
	rx := NewRxDevice(line, h)
	rx.HandleInterrupt()
	rx.HandleInterrupt()

	if h.edges != 2 || rx.Passes() != 2 {
		t.Fatalf("edges = %d passes = %d", h.edges, rx.Passes())
	}
	if line.cleared != 2 {
		t.Fatalf("cleared = %d, want once per pass", line.cleared)
	}
}

func TestRxDeviceNotReentrant(t *testing.T) {
	h := &countHandler{}
	rx := NewRxDevice(&levelLine{}, h)
	h.rx = rx
	rx.HandleInterrupt()
	if h.edges != 1 {
		t.Fatalf("handler ran %d times", h.edges)
	}
}

type plainLine struct{}

func (plainLine) Get() bool { return true }

func TestRxDeviceWithoutArmer(t *testing.T) {
	h := &countHandler{}
	rx := NewRxDevice(plainLine{}, h)
	rx.HandleInterrupt()
	if h.edges != 1 {
		t.Fatalf("edges = %d", h.edges)
	}
}

func TestMultiEdgeHandler(t *testing.T) {
	a, b := &countHandler{}, &countHandler{}
	rx := NewRxDevice(&levelLine{}, MultiEdgeHandler(a, b))
	rx.HandleInterrupt()
	if a.edges != 1 || b.edges != 1 {
		t.Fatalf("edges = %d, %d", a.edges, b.edges)
	}
}
