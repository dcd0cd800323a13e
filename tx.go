//go:build tinygo

package irmouse

import (
	. "machine"
	"time"

	"github.com/sparques/pwm"
)

type TxDevice struct {
	pin    Pin
	pgroup pwm.Group
	ch     uint8
	duty   uint32
	freq   uint64
}

// NewTxDevice configures pin to drive an IR LED with a carrier of freq Hz,
// e.g. Freq36Khz for RC5.
func NewTxDevice(pin Pin, freq uint64) (*TxDevice, error) {
	pin.Configure(PinConfig{Mode: PinPWM})
	pgroup := pwm.Get(pin)
	err := pgroup.Configure(PWMConfig{Period: uint64(1e9) / freq})
	if err != nil {
		return nil, err
	}
	ch, err := pgroup.Channel(pin)
	if err != nil {
		return nil, err
	}
	pgroup.Set(ch, 0)
	return &TxDevice{
		pin:    pin,
		pgroup: pgroup,
		ch:     ch,
		// RC5 transmitters use a 1/3 duty cycle
		duty: pgroup.Top() / 3,
		freq: freq,
	}, nil
}

func (tx *TxDevice) SendPair(pair TimePair) {
	tx.pgroup.Set(tx.ch, tx.duty)
	time.Sleep(pair[0])
	tx.pgroup.Set(tx.ch, 0)
	time.Sleep(pair[1])
}

func (tx *TxDevice) SendPairs(pairs ...TimePair) {
	for _, p := range pairs {
		tx.SendPair(p)
	}
}

func (tx *TxDevice) SendFrame(fm FrameMarshaller) {
	tx.SendPairs(fm.MarshalFrame()...)
}

// SendRepeated sends fm n times back to back, the way a remote repeats a
// frame while a button is held.
func (tx *TxDevice) SendRepeated(fm FrameMarshaller, n int) {
	pairs := fm.MarshalFrame()
	for i := 0; i < n; i++ {
		tx.SendPairs(pairs...)
	}
}
