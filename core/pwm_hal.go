package core

// Channel identifies one of the three color outputs. Red and green sit
// on the two compare channels of the first timer unit, blue on the
// first compare channel of the second.
type Channel uint8

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue

	// NumChannels is the number of color channels the engine drives.
	NumChannels = 3
)

// IRQState is the opaque interrupt-enable state saved on entry to a
// critical section and handed back on exit. Hardware drivers wrap
// runtime/interrupt.State; simulated drivers are free to use it as a
// nesting counter.
type IRQState uintptr

// Driver is the abstract hardware interface the engine drives.
// Platform-specific implementations perform the actual register writes;
// simulated implementations let the engine logic run in host tests.
//
// None of the methods block. Apart from ConfigureTimers, which may fail
// while setting up a peripheral, they are plain register writes with no
// failure modes.
type Driver interface {
	// ConfigureTimers sets up both timer units for phase-correct PWM
	// counting against CompareMax with their counters in a known
	// relative phase, and leaves them free-running. The compare
	// outputs stay disconnected from the pins.
	ConfigureTimers() error

	// ConnectChannel routes the channel's compare-match output to its
	// pin, so the counter directly drives the waveform.
	ConnectChannel(ch Channel)

	// DisconnectChannel detaches the compare-match output and returns
	// the pin to plain output mode. The counter keeps running.
	DisconnectChannel(ch Channel)

	// WriteCompare loads the channel's compare register.
	WriteCompare(ch Channel, value uint16)

	// SetPinInactive drives the channel's pin to its inactive level.
	// The fixture is active low, so inactive means high.
	SetPinInactive(ch Channel)

	// MaskInterrupts saves the current interrupt-enable state and
	// disables interrupts.
	MaskInterrupts() IRQState

	// RestoreInterrupts restores a state previously returned by
	// MaskInterrupts. It must not unconditionally re-enable, so that
	// critical sections compose under nesting.
	RestoreInterrupts(state IRQState)
}
