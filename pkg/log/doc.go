// Package log provides structured event logging for the device bridge.
//
// This package defines the Logger interface and Event type for capturing
// bridge-level events (discovery, instance creation, handle encode/decode,
// method invocation). It is separate from operational logging (slog) -
// bridge capture provides a machine-readable trace of every operation that
// crossed the bridge boundary.
//
// # Basic Usage
//
// Components accept a Logger implementation:
//
//	// For development: log to console via slog
//	b := bridge.New(reg, log.NewSlogAdapter(slog.Default()))
//
//	// Logging disabled
//	b := bridge.New(reg, log.NoopLogger{})
//
//	// Multiple sinks
//	b := bridge.New(reg, log.NewMultiLogger(sinkA, sinkB))
//
// Loader failures during discovery are reported only through this package;
// discovery itself never fails because of a broken driver module.
package log
