// Package scan discovers bridge-capable devices on the local network via
// mDNS. Scanning finds device addresses; which driver to bind them to is
// the caller's decision (the TXT record may carry a type hint).
package scan

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Service constants for bridge-capable devices.
const (
	ServiceType = "_devbridge._tcp"
	Domain      = "local."

	// DefaultPort is the advertised port when none is configured.
	DefaultPort = 54321
)

// Config configures scanning behavior.
type Config struct {
	// Timeout is the default timeout for browse operations.
	// Default: 10 seconds.
	Timeout time.Duration

	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string
}

// DefaultConfig returns the default scan configuration.
func DefaultConfig() Config {
	return Config{
		Timeout: 10 * time.Second,
	}
}

// ServiceEntry is the transport-independent form of one mDNS answer.
// The browser converts zeroconf entries into this type before parsing.
type ServiceEntry struct {
	// Instance is the mDNS instance name.
	Instance string

	// Host is the advertised hostname.
	Host string

	// Port is the advertised port.
	Port int

	// Text contains the raw TXT records.
	Text []string

	// Addrs are the reachable IP addresses, as strings.
	Addrs []string
}

// Found describes one discovered device.
type Found struct {
	// Instance is the mDNS instance name.
	Instance string

	// Host is the advertised hostname.
	Host string

	// Addresses are the reachable IP addresses, as strings.
	Addresses []string

	// Port is the advertised port.
	Port int

	// TypeHint is the driver type the device claims to speak, if any.
	TypeHint string
}

// EncodeTXT renders the TXT records advertised by a bridge-capable
// device. Keys are sorted for deterministic output.
func EncodeTXT(typeHint string, extra map[string]string) []string {
	records := make(map[string]string, len(extra)+1)
	for k, v := range extra {
		records[k] = v
	}
	if typeHint != "" {
		records["type"] = typeHint
	}

	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s=%s", k, records[k]))
	}
	return out
}

// EntryToFound parses one service entry into a discovery result.
func EntryToFound(entry ServiceEntry) Found {
	txt := DecodeTXT(entry.Text)
	return Found{
		Instance:  entry.Instance,
		Host:      entry.Host,
		Addresses: entry.Addrs,
		Port:      entry.Port,
		TypeHint:  txt["type"],
	}
}

// DecodeTXT parses key=value TXT records. Records without "=" are
// skipped.
func DecodeTXT(records []string) map[string]string {
	out := make(map[string]string, len(records))
	for _, r := range records {
		key, value, ok := strings.Cut(r, "=")
		if !ok || key == "" {
			continue
		}
		out[key] = value
	}
	return out
}
