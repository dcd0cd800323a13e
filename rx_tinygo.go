//go:build tinygo

package irmouse

import (
	. "machine"
	"runtime/interrupt"
	"time"
)

// NewPinRxDevice configures pin as the receiver input and returns an RxDevice
// reading it. The pin is pulled up because the common receivers only sink.
func NewPinRxDevice(pin Pin, handler EdgeHandler) *RxDevice {
	pin.Configure(PinConfig{Mode: PinInputPullup})
	return NewRxDevice(pin, handler)
}

// Start sets the falling edge interrupt on pin and thus starts decoding.
func (rx *RxDevice) Start(pin Pin) error {
	return pin.SetInterrupt(PinFalling, func(Pin) {
		rx.HandleInterrupt()
	})
}

// Stop disables the interrupt handler.
func (rx *RxDevice) Stop(pin Pin) error {
	return pin.SetInterrupt(PinFalling, nil)
}

// SpinDelayer busy-waits on the monotonic clock. time.Sleep is not allowed
// from an interrupt handler.
type SpinDelayer struct{}

func (SpinDelayer) Delay(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}

// SpinTimer emulates a free running compare timer with a deadline that
// advances by one period per match.
type SpinTimer struct {
	period time.Duration
	next   time.Time
}

func (t *SpinTimer) Arm(period time.Duration) {
	t.period = period
	t.next = time.Now().Add(period)
}

func (t *SpinTimer) Wait() {
	for time.Now().Before(t.next) {
	}
	t.next = t.next.Add(t.period)
}

// HardwareWatchdog feeds the chip watchdog.
type HardwareWatchdog struct{}

// StartWatchdog configures and starts the chip watchdog.
func StartWatchdog(timeout time.Duration) (HardwareWatchdog, error) {
	err := Watchdog.Configure(WatchdogConfig{TimeoutMillis: uint32(timeout / time.Millisecond)})
	if err != nil {
		return HardwareWatchdog{}, err
	}
	return HardwareWatchdog{}, Watchdog.Start()
}

func (HardwareWatchdog) Reset() {
	Watchdog.Update()
}

// InterruptLocker is a sync.Locker that masks interrupts. The main loop uses
// it to copy the pending report out without racing the receiver interrupt.
type InterruptLocker struct {
	state interrupt.State
}

func (l *InterruptLocker) Lock() {
	l.state = interrupt.Disable()
}

func (l *InterruptLocker) Unlock() {
	interrupt.Restore(l.state)
}
