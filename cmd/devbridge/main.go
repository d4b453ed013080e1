// Command devbridge is an interactive shell for the device bridge.
//
// It exposes the dynamic driver surface on the command line: list the
// registered device types, create a device by type name, inspect its
// callable methods, invoke them, and persist device handles across
// runs. Devices can also be located on the local network via mDNS.
//
// Usage:
//
//	devbridge [flags]
//
// Flags:
//
//	-config string        Configuration file with device aliases (YAML)
//	-store string         Handle store path (default "devbridge-handles.json")
//	-plugins string       Directory of driver plugins (*.so) to load
//	-scan-timeout duration  Timeout for network scans (default 10s)
//	-log-level string     Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Start with defaults
//	devbridge
//
//	# Start with a device alias file and verbose logging
//	devbridge -config devices.yaml -log-level debug
package main

import (
	"context"
	"flag"
	stdlog "log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/devbridge-project/devbridge-go/cmd/devbridge/interactive"
	"github.com/devbridge-project/devbridge-go/pkg/bridge"
	_ "github.com/devbridge-project/devbridge-go/pkg/drivers/all"
	"github.com/devbridge-project/devbridge-go/pkg/handle"
	"github.com/devbridge-project/devbridge-go/pkg/log"
	"github.com/devbridge-project/devbridge-go/pkg/registry"
)

// Config holds the command configuration.
type Config struct {
	ConfigFile  string
	StorePath   string
	PluginDir   string
	ScanTimeout time.Duration
	LogLevel    string
}

var config Config

func init() {
	flag.StringVar(&config.ConfigFile, "config", "", "Configuration file with device aliases (YAML)")
	flag.StringVar(&config.StorePath, "store", "devbridge-handles.json", "Handle store path")
	flag.StringVar(&config.PluginDir, "plugins", "", "Directory of driver plugins (*.so) to load")
	flag.DurationVar(&config.ScanTimeout, "scan-timeout", 10*time.Second, "Timeout for network scans")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// aliasFile represents the YAML structure of the alias config file.
type aliasFile struct {
	Devices map[string]interactive.Alias `yaml:"devices"`
}

func main() {
	flag.Parse()

	logger := setupLogging(config.LogLevel)

	aliases, err := loadAliases(config.ConfigFile)
	if err != nil {
		stdlog.Fatalf("Invalid configuration: %v", err)
	}

	// External driver plugins register themselves on each discovery pass;
	// a broken plugin is a silent omission, not a startup failure.
	if config.PluginDir != "" {
		registry.Default().AddLoader(registry.PluginDirLoader(config.PluginDir))
	}

	b := bridge.New(nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session, err := interactive.New(b, interactive.Config{
		Store:       handle.NewStore(config.StorePath),
		Aliases:     aliases,
		ScanTimeout: config.ScanTimeout,
	})
	if err != nil {
		stdlog.Fatalf("Failed to start session: %v", err)
	}

	// Shut down cleanly on SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	session.Run(ctx, cancel)
}

// setupLogging configures the bridge logger from the log level flag.
// Debug routes bridge events through slog; other levels stay quiet so
// the prompt is not flooded.
func setupLogging(level string) log.Logger {
	if level != "debug" {
		return log.NoopLogger{}
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return log.NewSlogAdapter(slog.New(handler))
}

// loadAliases reads the device alias file. An empty path means no
// aliases are configured.
func loadAliases(path string) (map[string]interactive.Alias, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file aliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return file.Devices, nil
}
