// PWM engine for the RGB fixture
//
// Each color channel is attached to its own output compare channel of
// the hardware timers. A timer unit only has two compare channels, so
// two units are used (red and green on the first, blue on the second).
// Both run phase-correct PWM against a top of CompareMax, which keeps
// the signal glitch-free at the 0 and 100% duty extremes.
//
// Every multi-register update goes through a critical section so that
// an interrupt can never observe a frame where only some channels have
// been updated.
package core

// Engine owns the timer configuration and mediates every transition of
// the physical PWM signal. All hardware access goes through the
// injected Driver, so the engine itself runs unchanged on real hardware
// and on a simulated backend in tests.
type Engine struct {
	drv   Driver
	color RGBColor
}

// NewEngine returns an engine driving the given hardware backend. The
// cached color starts all zero, matching the zeroed compare registers
// after Initialize.
func NewEngine(drv Driver) *Engine {
	return &Engine{drv: drv}
}

// critical runs fn with interrupts masked, restoring the previously
// saved state on every exit path. Restoring rather than re-enabling
// keeps nesting inside an outer critical section correct.
func (e *Engine) critical(fn func()) {
	state := e.drv.MaskInterrupts()
	defer e.drv.RestoreInterrupts(state)
	fn()
}

// Initialize configures the timers so PWM signals can be generated. It
// must be called exactly once, before any other method, and with no
// interrupt activity: it programs registers across two independent
// timer units that have to start in a known relative phase.
//
// No signal is output yet. The pins are forced to their inactive level
// until Enable is invoked.
func (e *Engine) Initialize() error {
	for ch := ChannelRed; ch < NumChannels; ch++ {
		e.drv.DisconnectChannel(ch)
		e.drv.SetPinInactive(ch)
	}
	if err := e.drv.ConfigureTimers(); err != nil {
		return err
	}
	// Compare registers are addressed per channel, which the driver
	// only resolves while configuring the timers, so zero them after.
	for ch := ChannelRed; ch < NumChannels; ch++ {
		e.drv.WriteCompare(ch, 0)
	}
	return nil
}

// Enable connects the compare outputs to the pins so the counters drive
// the waveform. All three channels start reflecting PWM in the same
// critical section, not staggered. Calling Enable while already enabled
// has no observable effect.
func (e *Engine) Enable() {
	DebugPrintln("pwm: enable")
	e.critical(func() {
		for ch := ChannelRed; ch < NumChannels; ch++ {
			e.drv.SetPinInactive(ch)
			e.drv.ConnectChannel(ch)
		}
	})
}

// Disable detaches the compare outputs and forces the pins back to
// their inactive level. The timers keep running in the background, so a
// later Enable resumes with the counters still in phase.
func (e *Engine) Disable() {
	DebugPrintln("pwm: disable")
	e.critical(func() {
		for ch := ChannelRed; ch < NumChannels; ch++ {
			e.drv.DisconnectChannel(ch)
			e.drv.SetPinInactive(ch)
		}
	})
}

// SetColor records the color and applies the three gamma-corrected
// compare values to the timers as one atomic unit. An interrupt cannot
// observe a partially updated frame.
func (e *Engine) SetColor(c RGBColor) {
	if debugEnabled {
		DebugPrintln("pwm: color " + c.Hex())
	}
	e.critical(func() {
		e.color = c
		e.drv.WriteCompare(ChannelRed, GammaLookup(c.Red))
		e.drv.WriteCompare(ChannelGreen, GammaLookup(c.Green))
		e.drv.WriteCompare(ChannelBlue, GammaLookup(c.Blue))
	})
}

// Color returns the most recently recorded color. The cache is
// independent of the enable state: after Disable it still reports the
// last color set. Pure read, safe from any context.
func (e *Engine) Color() RGBColor {
	return e.color
}
