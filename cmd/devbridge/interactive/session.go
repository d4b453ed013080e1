// Package interactive provides the interactive command-line interface
// for the device bridge.
package interactive

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/devbridge-project/devbridge-go/pkg/bridge"
	"github.com/devbridge-project/devbridge-go/pkg/handle"
	"github.com/devbridge-project/devbridge-go/pkg/scan"
)

// Alias names a preconfigured device so it can be created without
// retyping its address and token.
type Alias struct {
	Address string `yaml:"address"`
	Token   string `yaml:"token"`
	Type    string `yaml:"type"`
}

// Config provides the collaborators and settings for a session.
type Config struct {
	// Store persists named handles across runs. Optional; without it
	// the save/load/handles commands report an error.
	Store *handle.Store

	// Aliases maps short names to device coordinates.
	Aliases map[string]Alias

	// ScanTimeout bounds the scan command. Zero uses the scan
	// package default.
	ScanTimeout time.Duration
}

// Session handles interactive mode for devbridge.
type Session struct {
	bridge *bridge.Bridge
	config Config
	rl     *readline.Instance

	// Current device handle, nil until create or load.
	current     []byte
	currentType string
}

// New creates a new interactive session.
func New(b *bridge.Bridge, cfg Config) (*Session, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "bridge> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Session{
		bridge: b,
		config: cfg,
		rl:     rl,
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline
// input. Use this for log output to avoid interfering with the prompt.
func (s *Session) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (s *Session) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run starts the interactive command loop.
func (s *Session) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "types", "t":
			s.cmdTypes()

		case "create", "c":
			s.cmdCreate(args)

		case "methods", "m":
			s.cmdMethods()

		case "call":
			s.cmdCall(args)

		case "save":
			s.cmdSave(args)

		case "load":
			s.cmdLoad(args)

		case "handles", "h":
			s.cmdHandles()

		case "drop":
			s.cmdDrop(args)

		case "scan":
			s.cmdScan(ctx)

		case "aliases", "a":
			s.cmdAliases()

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
Device Bridge Commands:
  Devices:
    types                      - List available device types
    create <addr> <token> <type> - Create a device and keep its handle
    create <alias>             - Create a device from a configured alias
    methods                    - List methods of the current device
    call <method> [args...]    - Call a method on the current device

  Handles:
    save <name>                - Save the current handle under a name
    load <name>                - Load a saved handle
    handles                    - List saved handles
    drop <name>                - Delete a saved handle

  Discovery:
    scan                       - Browse the local network for devices
    aliases                    - List configured device aliases

  General:
    help                       - Show this help
    quit                       - Exit`)
}

// cmdTypes lists the driver types known to the bridge.
func (s *Session) cmdTypes() {
	names := s.bridge.TypeNames()
	if len(names) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No device types available")
		return
	}

	fmt.Fprintf(s.rl.Stdout(), "\nAvailable Device Types (%d):\n", len(names))
	for _, name := range names {
		fmt.Fprintf(s.rl.Stdout(), "  %s\n", name)
	}
	fmt.Fprintln(s.rl.Stdout())
}

// cmdCreate handles the create command.
func (s *Session) cmdCreate(args []string) {
	var address, token, typeName string

	switch len(args) {
	case 1:
		alias, ok := s.config.Aliases[args[0]]
		if !ok {
			fmt.Fprintf(s.rl.Stdout(), "Unknown alias: %s\n", args[0])
			fmt.Fprintln(s.rl.Stdout(), "  Use 'aliases' to list configured aliases")
			return
		}
		address, token, typeName = alias.Address, alias.Token, alias.Type

	case 3:
		address, token, typeName = args[0], args[1], args[2]

	default:
		fmt.Fprintln(s.rl.Stdout(), "Usage: create <address> <token> <type>")
		fmt.Fprintln(s.rl.Stdout(), "       create <alias>")
		return
	}

	blob, err := s.bridge.NewHandle(address, token, typeName)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Create failed: %v\n", err)
		return
	}

	s.current = blob
	s.currentType = typeName
	fmt.Fprintf(s.rl.Stdout(), "Created %s at %s (handle: %d bytes)\n", typeName, address, len(blob))
}

// cmdMethods lists the callable methods of the current device.
func (s *Session) cmdMethods() {
	if s.current == nil {
		fmt.Fprintln(s.rl.Stdout(), "No current device (use 'create' or 'load' first)")
		return
	}

	methods, err := s.bridge.DescribeHandle(s.current)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(s.rl.Stdout(), "\nMethods of %s (%d):\n", s.currentType, len(names))
	for _, name := range names {
		fmt.Fprintf(s.rl.Stdout(), "  %s%s\n", name, methods[name])
	}
	fmt.Fprintln(s.rl.Stdout())
}

// cmdCall invokes a method on the current device. The handle is an
// immutable value; invocation decodes a fresh instance each time.
func (s *Session) cmdCall(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: call <method> [args...]")
		fmt.Fprintln(s.rl.Stdout(), "  Example: call setBrightness 50")
		return
	}

	if s.current == nil {
		fmt.Fprintln(s.rl.Stdout(), "No current device (use 'create' or 'load' first)")
		return
	}

	result, err := s.bridge.InvokeHandle(s.current, args[0], args[1:])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	fmt.Fprintln(s.rl.Stdout(), result)
}

// cmdSave persists the current handle under a name.
func (s *Session) cmdSave(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: save <name>")
		return
	}
	if s.current == nil {
		fmt.Fprintln(s.rl.Stdout(), "No current device (use 'create' or 'load' first)")
		return
	}
	if s.config.Store == nil {
		fmt.Fprintln(s.rl.Stdout(), "No handle store configured")
		return
	}

	if err := s.config.Store.Save(args[0], s.current); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Save failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "Saved handle '%s'\n", args[0])
}

// cmdLoad restores a saved handle and makes it current.
func (s *Session) cmdLoad(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: load <name>")
		fmt.Fprintln(s.rl.Stdout(), "  Use 'handles' to list saved handles")
		return
	}
	if s.config.Store == nil {
		fmt.Fprintln(s.rl.Stdout(), "No handle store configured")
		return
	}

	blob, err := s.config.Store.Load(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Load failed: %v\n", err)
		return
	}
	if blob == nil {
		fmt.Fprintf(s.rl.Stdout(), "Handle not found: %s\n", args[0])
		return
	}

	// Decode up front so a stale handle fails here, not on first call.
	d, err := s.bridge.Decode(blob)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Handle '%s' is not usable: %v\n", args[0], err)
		return
	}

	s.current = blob
	s.currentType = d.TypeName()
	fmt.Fprintf(s.rl.Stdout(), "Loaded %s from handle '%s'\n", s.currentType, args[0])
}

// cmdHandles lists saved handles.
func (s *Session) cmdHandles() {
	if s.config.Store == nil {
		fmt.Fprintln(s.rl.Stdout(), "No handle store configured")
		return
	}

	names, err := s.config.Store.List()
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	if len(names) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No saved handles")
		return
	}

	fmt.Fprintf(s.rl.Stdout(), "\nSaved Handles (%d):\n", len(names))
	for _, name := range names {
		fmt.Fprintf(s.rl.Stdout(), "  %s\n", name)
	}
	fmt.Fprintln(s.rl.Stdout())
}

// cmdDrop deletes a saved handle.
func (s *Session) cmdDrop(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: drop <name>")
		return
	}
	if s.config.Store == nil {
		fmt.Fprintln(s.rl.Stdout(), "No handle store configured")
		return
	}

	if err := s.config.Store.Delete(args[0]); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Delete failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "Deleted handle '%s'\n", args[0])
}

// cmdScan browses the local network for bridge-capable devices.
func (s *Session) cmdScan(ctx context.Context) {
	cfg := scan.DefaultConfig()
	if s.config.ScanTimeout > 0 {
		cfg.Timeout = s.config.ScanTimeout
	}

	fmt.Fprintf(s.rl.Stdout(), "Scanning for %s...\n", cfg.Timeout)

	scanner := scan.NewScanner(cfg)
	found, err := scanner.Browse(ctx)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Scan failed: %v\n", err)
		return
	}

	count := 0
	for device := range found {
		count++
		addr := device.Host
		if len(device.Addresses) > 0 {
			addr = device.Addresses[0]
		}
		if device.TypeHint != "" {
			fmt.Fprintf(s.rl.Stdout(), "  %s at %s:%d (%s)\n",
				device.Instance, addr, device.Port, device.TypeHint)
		} else {
			fmt.Fprintf(s.rl.Stdout(), "  %s at %s:%d\n",
				device.Instance, addr, device.Port)
		}
	}

	if count == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No devices found")
	} else {
		fmt.Fprintf(s.rl.Stdout(), "Found %d device(s)\n", count)
	}
}

// cmdAliases lists the configured device aliases.
func (s *Session) cmdAliases() {
	if len(s.config.Aliases) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No aliases configured")
		return
	}

	names := make([]string, 0, len(s.config.Aliases))
	for name := range s.config.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(s.rl.Stdout(), "\nConfigured Aliases (%d):\n", len(names))
	for _, name := range names {
		alias := s.config.Aliases[name]
		fmt.Fprintf(s.rl.Stdout(), "  %-16s %s @ %s\n", name, alias.Type, alias.Address)
	}
	fmt.Fprintln(s.rl.Stdout())
}
