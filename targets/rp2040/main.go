//go:build rp2040

package main

import (
	"machine"
	"time"

	"ledtable/core"
)

func main() {
	// Give USB CDC a moment to enumerate so early prints aren't lost.
	time.Sleep(2 * time.Second)

	core.SetDebugWriter(func(s string) { println(s) })

	driver := newRPDriver()
	engine := core.NewEngine(driver)

	// Interrupt sources are still quiet this early in boot, which
	// Initialize relies on to start both slices in phase.
	if err := engine.Initialize(); err != nil {
		println("pwm init failed:", err.Error())
		return
	}
	engine.Enable()

	status, err := newStatusPixel(statusPixelPin)
	if err != nil {
		println("status pixel unavailable:", err.Error())
		status = nil
	}

	console := core.NewConsole(engine)

	// Line-oriented control console over USB CDC. Colors only ever
	// arrive from the other end of the wire; the firmware itself never
	// decides what to show.
	serial := machine.Serial
	line := make([]byte, 0, 64)
	for {
		b, err := serial.ReadByte()
		if err != nil {
			time.Sleep(time.Millisecond)
			continue
		}
		switch b {
		case '\r':
			// handled at '\n'
		case '\n':
			reply := console.ProcessLine(string(line))
			if reply != "" {
				serial.Write([]byte(reply))
				serial.Write([]byte("\r\n"))
			}
			if status != nil {
				status.Show(engine.Color())
			}
			line = line[:0]
		default:
			if len(line) < cap(line) {
				line = append(line, b)
			}
		}
	}
}
