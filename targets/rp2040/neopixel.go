//go:build rp2040

package main

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"ledtable/core"
)

// statusPixelPin is the on-board WS2812 found on small RP2040 dev
// boards (GPIO16 on the Waveshare RP2040-Zero).
const statusPixelPin = machine.GPIO16

// statusPixel mirrors the fixture color on the board's own pixel, which
// is handy when the real fixture isn't wired up. It sits outside the
// engine: the PWM pins stay the only output the engine knows about.
type statusPixel struct {
	ws *piolib.WS2812B
}

func newStatusPixel(pin machine.Pin) (*statusPixel, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	ws, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		return nil, err
	}
	return &statusPixel{ws: ws}, nil
}

func (s *statusPixel) Show(c core.RGBColor) {
	s.ws.PutRGB(c.Red, c.Green, c.Blue)
}
