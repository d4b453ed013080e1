// Package invoke executes named operations on live driver instances,
// folding every failure into the returned result string.
//
// This is a deliberately weakly-typed boundary: a caller that knows only
// method names (from the catalog) drives a device whose concrete type it
// never sees. A single bad call must not end a long-lived session, so
// invocation failures are reported in-band rather than propagated.
package invoke

import (
	"fmt"

	"github.com/devbridge-project/devbridge-go/pkg/driver"
)

// Call executes the named method on the instance with positional string
// arguments and returns the string conversion of its result. Call never
// returns an error: an absent or not-callable method, a failing thunk,
// and even a panicking thunk all fold into an error string of the form
// "Error calling method '<name>': <description>".
//
// Arguments pass through unmodified; the driver's thunk performs any
// coercion.
func Call(d driver.Driver, methodName string, args []string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("Error calling method '%s': %v", methodName, r)
		}
	}()

	m, ok := d.Methods().Get(methodName)
	if !ok || m.Call == nil {
		return fmt.Sprintf("Error calling method '%s': Method '%s' not found on device %s",
			methodName, methodName, d.TypeName())
	}

	out, err := m.Call(args)
	if err != nil {
		return fmt.Sprintf("Error calling method '%s': %v", methodName, err)
	}
	return fmt.Sprint(out)
}
