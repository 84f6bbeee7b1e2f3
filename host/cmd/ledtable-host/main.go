package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"

	"ledtable/host/fixture"
	"ledtable/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
)

func main() {
	flag.Parse()

	fix := fixture.New()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	if err := fix.ConnectWithConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer fix.Close()

	// One-shot mode: a command given on the command line is executed
	// and the reply printed.
	if args := flag.Args(); len(args) > 0 {
		reply, err := fix.Exec(strings.Join(args, " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(reply)
		return
	}

	fmt.Printf("Connected to %s\n", *device)
	fmt.Println("Enter commands (type 'help' for the fixture's command list, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		tokens, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		switch tokens[0] {
		case "quit", "exit", "q":
			return
		default:
			reply, err := fix.Exec(strings.Join(tokens, " "))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Println(reply)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}
