package fixture

import (
	"bytes"
	"strings"
	"testing"
)

// scriptPort is a fake serial port with canned replies.
type scriptPort struct {
	replies bytes.Buffer // data Read will return
	sent    bytes.Buffer // data the client wrote
	closed  bool
}

func (p *scriptPort) Read(b []byte) (int, error)  { return p.replies.Read(b) }
func (p *scriptPort) Write(b []byte) (int, error) { return p.sent.Write(b) }
func (p *scriptPort) Close() error                { p.closed = true; return nil }

func TestExec(t *testing.T) {
	port := &scriptPort{}
	port.replies.WriteString("ok\r\n")
	fix := NewWithPort(port)

	reply, err := fix.Exec("set FF8800")
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if reply != "ok" {
		t.Errorf("Expected reply ok, got %q", reply)
	}
	if got := port.sent.String(); got != "set FF8800\n" {
		t.Errorf("Expected line %q on the wire, got %q", "set FF8800\n", got)
	}
}

func TestExecErrorReply(t *testing.T) {
	port := &scriptPort{}
	port.replies.WriteString("error: invalid hex color\n")
	fix := NewWithPort(port)

	_, err := fix.Exec("set ZZZZZZ")
	if err == nil {
		t.Fatal("Expected an error for an error reply")
	}
	if !strings.Contains(err.Error(), "invalid hex color") {
		t.Errorf("Expected firmware message in error, got %v", err)
	}
}

func TestExecNotConnected(t *testing.T) {
	fix := New()
	if _, err := fix.Exec("get"); err == nil {
		t.Error("Expected an error when not connected")
	}
}

func TestHelpers(t *testing.T) {
	port := &scriptPort{}
	port.replies.WriteString("ok\nFF0080\nok\nok\n")
	fix := NewWithPort(port)

	if err := fix.SetColor("FF0080"); err != nil {
		t.Fatalf("SetColor failed: %v", err)
	}
	color, err := fix.GetColor()
	if err != nil {
		t.Fatalf("GetColor failed: %v", err)
	}
	if color != "FF0080" {
		t.Errorf("Expected FF0080, got %q", color)
	}
	if err := fix.Enable(); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}
	if err := fix.Disable(); err != nil {
		t.Fatalf("Disable failed: %v", err)
	}

	want := "set FF0080\nget\nenable\ndisable\n"
	if got := port.sent.String(); got != want {
		t.Errorf("Expected commands %q, got %q", want, got)
	}
}

func TestClose(t *testing.T) {
	port := &scriptPort{}
	fix := NewWithPort(port)
	if err := fix.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !port.closed {
		t.Error("Port not closed")
	}
}
