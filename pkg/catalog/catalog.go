// Package catalog enumerates the invokable operations of a live driver
// instance as a name-to-signature mapping.
package catalog

import (
	"strings"

	"github.com/devbridge-project/devbridge-go/pkg/driver"
)

// NoSignature is recorded for methods whose parameter list cannot be
// determined. The entry is still listed; introspection failure of one
// member never fails the whole call.
const NoSignature = "No signature available"

// privatePrefix marks implementation-private entries that are not listed.
const privatePrefix = "_"

// Describe returns a snapshot of the instance's invokable operations,
// mapping each method name to its signature string.
//
// The mapping is computed on demand and never cached here; callers must
// recompute it when the instance's available operations may have changed.
func Describe(d driver.Driver) map[string]string {
	methods := d.Methods()
	out := make(map[string]string, methods.Len())

	for _, name := range methods.Names() {
		if strings.HasPrefix(name, privatePrefix) {
			continue
		}
		m, ok := methods.Get(name)
		if !ok || m.Call == nil {
			continue
		}
		out[name] = Signature(m)
	}

	return out
}

// Signature renders a method's parameter list, e.g. "(value)" or "()".
// A method with an unknown parameter list yields NoSignature.
func Signature(m *driver.Method) string {
	if m.Params == nil {
		return NoSignature
	}
	return "(" + strings.Join(m.Params, ", ") + ")"
}
