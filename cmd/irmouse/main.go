//go:build tinygo

// irmouse is the receiver firmware: an RC5 remote on the IR receiver pin
// becomes a USB mouse.
package main

import (
	"machine"
	"time"

	"github.com/sparques/irmouse"
	"github.com/sparques/irmouse/mouse"
	"github.com/sparques/irmouse/rc5"
)

// receiverPin carries the demodulated output of the IR receiver.
const receiverPin = machine.D2

func main() {
	// give the host a moment to enumerate before the watchdog starts
	time.Sleep(time.Second)

	wd, err := irmouse.StartWatchdog(time.Second)
	if err != nil {
		println("watchdog:", err.Error())
	}

	transport := newHIDTransport()
	dev := mouse.NewDevice(mouse.DefaultConfig, transport,
		mouse.WithLocker(&irmouse.InterruptLocker{}),
		mouse.WithWatchdog(wd),
		mouse.WithDelayer(irmouse.SpinDelayer{}),
	)

	sampler := rc5.NewSampler(receiverPin, &irmouse.SpinTimer{}, irmouse.SpinDelayer{})
	decoder := rc5.NewStateMachine(sampler, wd, dev.HandleCommand)
	rx := irmouse.NewPinRxDevice(receiverPin, decoder)
	if err := rx.Start(receiverPin); err != nil {
		println("receiver:", err.Error())
	}

	for {
		dev.Tick()
	}
}
