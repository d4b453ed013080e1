// Package powerswitch implements a single-relay switch driver.
package powerswitch

import (
	"sync"

	"github.com/devbridge-project/devbridge-go/pkg/driver"
	"github.com/devbridge-project/devbridge-go/pkg/registry"
)

// SwitchDriver simulates a switch with one relay.
type SwitchDriver struct {
	driver.Base

	mu sync.Mutex
	on bool

	methods *driver.MethodSet
}

func init() {
	registry.MustRegister(registry.Descriptor{Name: "SwitchDriver", New: New})
}

// New constructs a switch driver for the given connection parameters.
func New(address, credential string) (driver.Driver, error) {
	d := &SwitchDriver{}
	d.Base = driver.NewBase(address, credential)
	d.methods = d.buildMethods()
	return d, nil
}

// TypeName returns the registered type identity.
func (d *SwitchDriver) TypeName() string {
	return "SwitchDriver"
}

// Methods returns the invokable operation table.
func (d *SwitchDriver) Methods() *driver.MethodSet {
	return d.methods
}

func (d *SwitchDriver) buildMethods() *driver.MethodSet {
	ms := driver.NewMethodSet()

	ms.MustAdd(&driver.Method{
		Name:   "toggle",
		Params: []string{},
		Call: func(args []string) (any, error) {
			d.EnsureSession()
			d.mu.Lock()
			defer d.mu.Unlock()
			d.on = !d.on
			return "ok", nil
		},
	})

	ms.MustAdd(&driver.Method{
		Name:   "status",
		Params: []string{},
		Call: func(args []string) (any, error) {
			d.EnsureSession()
			d.mu.Lock()
			defer d.mu.Unlock()
			if d.on {
				return "on", nil
			}
			return "off", nil
		},
	})

	return ms
}

// SessionState returns the serializable switch state.
func (d *SwitchDriver) SessionState() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return map[string]any{"power": d.on}
}

// RestoreSession applies a snapshotted switch state.
func (d *SwitchDriver) RestoreSession(state map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.on = driver.StateBool(state, "power", d.on)
}
