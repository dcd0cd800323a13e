//go:build tinygo

package main

import (
	"machine"
	"machine/usb/hid"
	"sync/atomic"

	"github.com/sparques/irmouse/mouse"
)

// reportID is the id the stock composite descriptor gives the mouse.
const reportID = 0x01

// hidTransport submits mouse reports on the HID interrupt endpoint. A
// report is in flight from Submit until the endpoint calls TxHandler.
type hidTransport struct {
	busy atomic.Bool
	buf  [1 + mouse.ReportSize]byte
}

func newHIDTransport() *hidTransport {
	t := &hidTransport{}
	t.buf[0] = reportID
	hid.SetHandler(t)
	return t
}

// Poll is a no-op; the USB stack is interrupt driven.
func (t *hidTransport) Poll() {}

// IsReady is false until the host has configured the endpoint.
func (t *hidTransport) IsReady() bool {
	return machine.USBDev.InitEndpointComplete && !t.busy.Load()
}

func (t *hidTransport) Submit(report []byte) {
	t.busy.Store(true)
	copy(t.buf[1:], report)
	hid.SendUSBPacket(t.buf[:])
}

func (t *hidTransport) TxHandler() bool {
	t.busy.Store(false)
	return false
}

func (t *hidTransport) RxHandler(b []byte) bool {
	return false
}
