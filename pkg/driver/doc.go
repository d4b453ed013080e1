// Package driver defines the device capability that all driver
// implementations satisfy: constructible from an address and a credential,
// exposing a set of named callable operations.
//
// The weak-typing boundary of the bridge is confined to this package's
// MethodSet: each driver declares a typed invocation thunk per method name,
// taking positional string arguments and coercing them itself. Callers that
// only know method names (via the catalog) drive drivers through these
// thunks without compile-time knowledge of the concrete type.
//
// Implementations embed Base for connection state (address, credential,
// lazily established session) and register a constructor with pkg/registry
// from their init function.
package driver
