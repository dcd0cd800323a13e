package irmouse

// RxDevice ties a receiver line to the handler that decodes what arrives on it.
type RxDevice struct {
	line    Line
	handler EdgeHandler
	armer   EdgeArmer
	active  bool
	passes  int
}

type multiEdgeHandler []EdgeHandler

func (meh multiEdgeHandler) HandleFallingEdge() {
	for i := range meh {
		meh[i].HandleFallingEdge()
	}
}

// MultiEdgeHandler accepts a list of EdgeHandlers and returns an object that
// also implements EdgeHandler. Each falling edge is passed to every handler in
// order, e.g. a decoder and an edge counter sharing one receiver.
func MultiEdgeHandler(ehs ...EdgeHandler) EdgeHandler {
	return multiEdgeHandler(ehs)
}

// NewRxDevice creates an RxDevice. If line also implements EdgeArmer its
// pending edge is cleared after every pass.
func NewRxDevice(line Line, handler EdgeHandler) *RxDevice {
	rx := &RxDevice{
		line:    line,
		handler: handler,
	}
	rx.armer, _ = line.(EdgeArmer)
	return rx
}

// Line returns the receiver line.
func (rx *RxDevice) Line() Line {
	return rx.line
}

// Passes returns how many interrupt passes have run.
func (rx *RxDevice) Passes() int {
	return rx.passes
}

// HandleInterrupt is the falling edge interrupt entry point. The handler runs
// to completion; any edge latched meanwhile is discarded so a garbled frame
// never leaves a stale edge behind.
func (rx *RxDevice) HandleInterrupt() {
	if rx.active {
		// nested edge; hardware defers it, we drop it
		return
	}
	rx.active = true
	rx.passes++
	rx.handler.HandleFallingEdge()
	if rx.armer != nil {
		rx.armer.ClearPending()
	}
	rx.active = false
}
