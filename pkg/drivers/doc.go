// Package drivers contains the built-in driver implementations.
//
// Each implementation lives in its own subpackage and registers itself
// with the process-wide registry from its init function. Importing
// pkg/drivers/all links every built-in implementation into a program:
//
//	import _ "github.com/devbridge-project/devbridge-go/pkg/drivers/all"
//
// The built-in drivers simulate their devices in process: method calls
// mutate local state after lazily establishing a session, and the
// address/credential pair identifies the device a real transport would
// dial. Device-specific wire protocols are out of scope for the bridge.
package drivers
