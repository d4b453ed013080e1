// Package handle converts live driver instances to and from opaque,
// transportable byte handles.
//
// A handle carries only reconstructible state: the declared type name, the
// connection parameters, and any declared-serializable session fields the
// driver exposes. Decoding re-runs the registered constructor rather than
// deserializing an object graph, so a handle survives a process restart
// and any open connection is re-established lazily on first use.
//
// Handles are value types. The byte format is implementation-private;
// callers must treat a handle as an indivisible token and must not
// exchange handles across incompatible codec versions.
//
// The package also provides a JSON file store for handles at rest.
package handle
