// Package registry indexes the available driver implementations by name.
//
// Discovery in a compiled program is a registration table: every driver
// implementation registers a named constructor from its init function (or
// a loaded plugin's init side effect), and a discovery pass iterates the
// table. Registration rejects duplicate names; two implementations
// claiming one name is a packaging bug, not a tie to break at lookup time.
//
// Loader hooks cover driver sets that are not linked in at build time
// (shared-object plugins). Loader failures are swallowed: a module that
// fails to load is invisible to discovery rather than fatal, favoring
// availability over completeness. Swallowed failures surface only as
// bridge log events.
package registry
