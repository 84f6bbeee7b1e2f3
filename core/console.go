// Text console for the control channel
//
// The firmware exposes a small line-oriented command set over its USB
// CDC port. What color to show is decided entirely by whoever sits on
// the other end of the wire (the host tool, an animation controller, a
// test harness); the console only relays commands to the engine.
package core

import (
	"errors"
	"strings"
)

// ErrInvalidArgument is returned when a console argument is not one of
// the accepted values.
var ErrInvalidArgument = errors.New("invalid argument")

// ConsoleHandler handles one console command. args excludes the command
// name. It returns the reply line; an empty reply is reported as "ok".
type ConsoleHandler func(args []string) (string, error)

type consoleCommand struct {
	name    string
	help    string
	handler ConsoleHandler
}

// Console dispatches command lines to registered handlers, similar to
// the command registry of a serial MCU protocol but in plain text.
type Console struct {
	engine   *Engine
	commands []consoleCommand // registration order, used for help
	byName   map[string]int
}

// NewConsole returns a console bound to the given engine with the
// standard command set registered.
func NewConsole(engine *Engine) *Console {
	c := &Console{
		engine: engine,
		byName: make(map[string]int),
	}
	c.Register("set", "set RRGGBB|R G B", c.cmdSet)
	c.Register("get", "get", c.cmdGet)
	c.Register("enable", "enable", c.cmdEnable)
	c.Register("disable", "disable", c.cmdDisable)
	c.Register("gamma", "gamma LEVEL", c.cmdGamma)
	c.Register("debug", "debug on|off", c.cmdDebug)
	c.Register("help", "help", c.cmdHelp)
	return c
}

// Register adds a command to the console. Registering a name twice
// replaces the earlier handler.
func (c *Console) Register(name, help string, handler ConsoleHandler) {
	if i, exists := c.byName[name]; exists {
		c.commands[i] = consoleCommand{name: name, help: help, handler: handler}
		return
	}
	c.byName[name] = len(c.commands)
	c.commands = append(c.commands, consoleCommand{name: name, help: help, handler: handler})
}

// ProcessLine executes one command line and returns the reply. Blank
// lines yield an empty reply.
func (c *Console) ProcessLine(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	i, ok := c.byName[fields[0]]
	if !ok {
		return "error: unknown command " + fields[0]
	}
	reply, err := c.commands[i].handler(fields[1:])
	if err != nil {
		return "error: " + err.Error()
	}
	if reply == "" {
		reply = "ok"
	}
	return reply
}

func (c *Console) cmdSet(args []string) (string, error) {
	switch len(args) {
	case 1:
		color, err := ParseRGBColor(args[0])
		if err != nil {
			return "", err
		}
		c.engine.SetColor(color)
		return "", nil
	case 3:
		var comp [3]uint8
		for i, arg := range args {
			v, err := parseUint8(arg)
			if err != nil {
				return "", err
			}
			comp[i] = v
		}
		c.engine.SetColor(RGBColor{Red: comp[0], Green: comp[1], Blue: comp[2]})
		return "", nil
	}
	return "", ErrInvalidColor
}

func (c *Console) cmdGet(args []string) (string, error) {
	return c.engine.Color().Hex(), nil
}

func (c *Console) cmdEnable(args []string) (string, error) {
	c.engine.Enable()
	return "", nil
}

func (c *Console) cmdDisable(args []string) (string, error) {
	c.engine.Disable()
	return "", nil
}

func (c *Console) cmdGamma(args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrInvalidNumber
	}
	level, err := parseUint8(args[0])
	if err != nil {
		return "", err
	}
	return utoa(uint32(GammaLookup(level))), nil
}

func (c *Console) cmdDebug(args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrInvalidArgument
	}
	switch args[0] {
	case "on":
		SetDebugEnabled(true)
	case "off":
		SetDebugEnabled(false)
	default:
		return "", ErrInvalidArgument
	}
	return "", nil
}

// cmdHelp lists command usages on one line; replies are line-oriented.
func (c *Console) cmdHelp(args []string) (string, error) {
	var b strings.Builder
	for i, cmd := range c.commands {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(cmd.help)
	}
	return b.String(), nil
}
