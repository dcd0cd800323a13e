//go:build tinygo

// rc5tx turns a board with an IR LED into a test remote. It walks the
// pointer around a square, clicks, and scrolls, forever.
package main

import (
	"machine"
	"time"

	"github.com/sparques/irmouse"
	"github.com/sparques/irmouse/mouse"
	"github.com/sparques/irmouse/rc5"
)

// ledPin drives the IR LED through a transistor.
const ledPin = machine.D3

type press struct {
	cmd  rc5.Command
	hold int
}

var program = []press{
	{mouse.CmdRight, 8},
	{mouse.CmdDown, 8},
	{mouse.CmdLeft, 8},
	{mouse.CmdUp, 8},
	{mouse.CmdLeftClick, 1},
	{mouse.CmdWheelDown, 3},
	{mouse.CmdWheelUp, 3},
	{mouse.CmdRightClick, 1},
}

func main() {
	tx, err := irmouse.NewTxDevice(ledPin, irmouse.Freq36Khz)
	if err != nil {
		for {
			println("tx:", err.Error())
			time.Sleep(time.Second)
		}
	}

	toggle := false
	for {
		for _, p := range program {
			tx.SendRepeated(rc5.NewFrame(toggle, rc5.AcceptedSystem, p.cmd), p.hold)
			toggle = !toggle
			// a release long enough for the receiver to drop back to idle
			time.Sleep(600 * time.Millisecond)
		}
	}
}
