package scan

import (
	"context"
	"net"

	"github.com/enbility/zeroconf/v3"
)

// Scanner browses the local network for bridge-capable devices.
type Scanner struct {
	config Config
}

// NewScanner creates a scanner with the given configuration.
func NewScanner(config Config) *Scanner {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &Scanner{config: config}
}

// Browse searches for devices until the context is cancelled or the
// configured timeout elapses. Results are aggregated by instance name so
// a device answering on multiple interfaces is emitted once.
func (s *Scanner) Browse(ctx context.Context) (<-chan Found, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)

	out := make(chan Found)
	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	opts := s.browserOptions()

	// Process entries with aggregation
	go func() {
		defer cancel()
		defer close(out)

		seen := make(map[string]bool)

		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				if entry == nil || seen[entry.Instance] {
					continue
				}
				seen[entry.Instance] = true
				select {
				case out <- EntryToFound(convertEntry(entry)):
				case <-ctx.Done():
					return
				}

			case _, ok := <-removed:
				if !ok {
					continue
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	// Start browsing in background
	go func() {
		_ = zeroconf.Browse(ctx, ServiceType, Domain, entries, removed, opts...)
	}()

	return out, nil
}

// browserOptions returns zeroconf client options based on config.
func (s *Scanner) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption
	if s.config.Interface != "" {
		if iface, err := net.InterfaceByName(s.config.Interface); err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}
	return opts
}

// convertEntry maps a zeroconf entry to the local ServiceEntry type.
func convertEntry(entry *zeroconf.ServiceEntry) ServiceEntry {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}

	return ServiceEntry{
		Instance: entry.Instance,
		Host:     entry.HostName,
		Port:     entry.Port,
		Text:     entry.Text,
		Addrs:    addrs,
	}
}
