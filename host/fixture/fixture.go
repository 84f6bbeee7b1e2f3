// Package fixture is the PC-side client for the LED fixture's serial
// control console.
package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"ledtable/host/serial"
)

// Fixture represents a connection to the fixture's control console.
type Fixture struct {
	port      serial.Port
	reader    *bufio.Reader
	connected bool
}

// New creates a new Fixture instance (not yet connected)
func New() *Fixture {
	return &Fixture{}
}

// NewWithPort wraps an already open port. Used by tests to talk to a
// simulated fixture.
func NewWithPort(port serial.Port) *Fixture {
	return &Fixture{
		port:      port,
		reader:    bufio.NewReader(port),
		connected: true,
	}
}

// Connect connects to the fixture via serial port
func (f *Fixture) Connect(device string) error {
	return f.ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig connects to the fixture with a custom serial config
func (f *Fixture) ConnectWithConfig(cfg *serial.Config) error {
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}

	f.port = port
	f.reader = bufio.NewReader(port)
	f.connected = true

	// Give the firmware time to initialize (if it just powered on)
	time.Sleep(100 * time.Millisecond)

	return nil
}

// Close closes the connection to the fixture
func (f *Fixture) Close() error {
	if f.port != nil {
		if err := f.port.Close(); err != nil {
			return err
		}
	}
	f.connected = false
	return nil
}

// Exec sends one console command line and returns the fixture's reply.
// An "error: ..." reply from the firmware comes back as an error.
func (f *Fixture) Exec(line string) (string, error) {
	if !f.connected {
		return "", fmt.Errorf("not connected to fixture")
	}

	if _, err := f.port.Write([]byte(line + "\n")); err != nil {
		return "", fmt.Errorf("failed to send command: %w", err)
	}

	reply, err := f.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read reply: %w", err)
	}
	reply = strings.TrimRight(reply, "\r\n")

	if msg, isErr := strings.CutPrefix(reply, "error: "); isErr {
		return "", errors.New(msg)
	}
	return reply, nil
}

// SetColor applies a six-digit hex color (RRGGBB).
func (f *Fixture) SetColor(hex string) error {
	_, err := f.Exec("set " + hex)
	return err
}

// GetColor reports the fixture's current color as RRGGBB.
func (f *Fixture) GetColor() (string, error) {
	return f.Exec("get")
}

// Enable turns the physical PWM output on.
func (f *Fixture) Enable() error {
	_, err := f.Exec("enable")
	return err
}

// Disable turns the physical PWM output off.
func (f *Fixture) Disable() error {
	_, err := f.Exec("disable")
	return err
}
