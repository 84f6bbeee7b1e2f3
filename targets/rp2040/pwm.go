//go:build rp2040

package main

import (
	"device/rp"
	"machine"
	"runtime/interrupt"

	"tinygo.org/x/drivers/servo"

	"ledtable/core"
)

// Fixture wiring. Red and green share PWM slice 0 (GPIO0 and GPIO1 are
// its A and B channels), blue sits on slice 1 channel A (GPIO2). The
// LED channels are active low: pin driven low turns the channel on.
const (
	redPin   = machine.GPIO0
	greenPin = machine.GPIO1
	bluePin  = machine.GPIO2
)

// pwmSlice is the peripheral surface the driver needs: the generic
// servo.PWM interface (Configure/Channel/Top/Set) plus the rp2 slice
// controls for top, polarity and counter. machine.PWM0..PWM7 satisfy
// it.
type pwmSlice interface {
	servo.PWM
	SetTop(top uint32)
	SetCounter(ctr uint32)
	SetInverting(channel uint8, inverting bool)
	Enable(enable bool)
}

// channelHW ties a color channel to its slice, compare channel and pin.
type channelHW struct {
	slice pwmSlice
	num   uint8
	pin   machine.Pin
}

// rpDriver implements core.Driver on the RP2040 PWM block.
type rpDriver struct {
	channels [core.NumChannels]channelHW
}

func newRPDriver() *rpDriver {
	d := &rpDriver{}
	d.channels[core.ChannelRed] = channelHW{slice: machine.PWM0, pin: redPin}
	d.channels[core.ChannelGreen] = channelHW{slice: machine.PWM0, pin: greenPin}
	d.channels[core.ChannelBlue] = channelHW{slice: machine.PWM1, pin: bluePin}
	return d
}

func (d *rpDriver) ConfigureTimers() error {
	// machine.PWM0 is register slice 0 (red, green), machine.PWM1 is
	// slice 1 (blue).
	for i, slice := range []pwmSlice{machine.PWM0, machine.PWM1} {
		if err := slice.Configure(machine.PWMConfig{}); err != nil {
			return err
		}
		// Configure leaves the slice in fast PWM and the machine API
		// does not expose the counting mode, so set PH_CORRECT in the
		// register block directly.
		rp.PWM.CH[i].CSR.SetBits(rp.PWM_CH0_CSR_PH_CORRECT_Msk)
		slice.SetTop(uint32(core.CompareMax))
	}

	for i := range d.channels {
		hw := &d.channels[i]
		num, err := hw.slice.Channel(hw.pin)
		if err != nil {
			return err
		}
		hw.num = num
		// Active low: invert the output so a zero compare keeps the
		// channel dark and CompareMax is full on.
		hw.slice.SetInverting(num, true)
		hw.slice.Set(num, 0)
		// Channel() flips the pin to PWM mode as a side effect. The
		// output must stay disconnected until Enable, so hand the pin
		// back to GPIO at its inactive level.
		d.DisconnectChannel(core.Channel(i))
		d.SetPinInactive(core.Channel(i))
	}

	// Zero both counters and start them back to back so the slices run
	// in a known relative phase. Initialize is called with interrupts
	// quiet, so nothing lands between the two enables.
	machine.PWM0.SetCounter(0)
	machine.PWM1.SetCounter(0)
	machine.PWM0.Enable(true)
	machine.PWM1.Enable(true)
	return nil
}

func (d *rpDriver) ConnectChannel(ch core.Channel) {
	d.channels[ch].pin.Configure(machine.PinConfig{Mode: machine.PinPWM})
}

func (d *rpDriver) DisconnectChannel(ch core.Channel) {
	d.channels[ch].pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
}

func (d *rpDriver) WriteCompare(ch core.Channel, value uint16) {
	hw := &d.channels[ch]
	hw.slice.Set(hw.num, uint32(value))
}

func (d *rpDriver) SetPinInactive(ch core.Channel) {
	d.channels[ch].pin.High()
}

func (d *rpDriver) MaskInterrupts() core.IRQState {
	return core.IRQState(interrupt.Disable())
}

func (d *rpDriver) RestoreInterrupts(state core.IRQState) {
	interrupt.Restore(interrupt.State(state))
}
