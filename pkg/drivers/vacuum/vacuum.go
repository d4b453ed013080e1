// Package vacuum implements robot vacuum drivers. MopVacuumDriver
// specializes VacuumDriver, inheriting its full operation set; both are
// discovered independently.
package vacuum

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/devbridge-project/devbridge-go/pkg/driver"
	"github.com/devbridge-project/devbridge-go/pkg/registry"
)

// Fan speed limits.
const (
	MinFanSpeed = 1
	MaxFanSpeed = 4
)

// VacuumDriver simulates a robot vacuum.
type VacuumDriver struct {
	driver.Base

	mu       sync.Mutex
	cleaning bool
	docked   bool
	fanSpeed int

	methods *driver.MethodSet
}

func init() {
	registry.MustRegister(registry.Descriptor{Name: "VacuumDriver", New: New})
}

// New constructs a vacuum driver for the given connection parameters.
func New(address, credential string) (driver.Driver, error) {
	d := &VacuumDriver{}
	d.init(address, credential)
	d.methods = d.buildMethods()
	return d, nil
}

// init sets the construction-time defaults shared with specializations.
func (d *VacuumDriver) init(address, credential string) {
	d.Base = driver.NewBase(address, credential)
	d.docked = true
	d.fanSpeed = 2
}

// TypeName returns the registered type identity.
func (d *VacuumDriver) TypeName() string {
	return "VacuumDriver"
}

// Methods returns the invokable operation table.
func (d *VacuumDriver) Methods() *driver.MethodSet {
	return d.methods
}

// buildMethods populates the vacuum operation set. Specializations call
// this first and add their own operations on top.
func (d *VacuumDriver) buildMethods() *driver.MethodSet {
	ms := driver.NewMethodSet()

	ms.MustAdd(&driver.Method{
		Name:   "start",
		Params: []string{},
		Call: func(args []string) (any, error) {
			d.EnsureSession()
			d.mu.Lock()
			defer d.mu.Unlock()
			d.cleaning = true
			d.docked = false
			return "ok", nil
		},
	})

	ms.MustAdd(&driver.Method{
		Name:   "dock",
		Params: []string{},
		Call: func(args []string) (any, error) {
			d.EnsureSession()
			d.mu.Lock()
			defer d.mu.Unlock()
			d.cleaning = false
			d.docked = true
			return "ok", nil
		},
	})

	ms.MustAdd(&driver.Method{
		Name:   "setFanSpeed",
		Params: []string{"speed"},
		Call: func(args []string) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("setFanSpeed expects 1 argument, got %d", len(args))
			}
			speed, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("invalid fan speed %q: %w", args[0], err)
			}
			if speed < MinFanSpeed || speed > MaxFanSpeed {
				return nil, fmt.Errorf("fan speed %d out of range %d..%d", speed, MinFanSpeed, MaxFanSpeed)
			}
			d.EnsureSession()
			d.mu.Lock()
			defer d.mu.Unlock()
			d.fanSpeed = speed
			return speed, nil
		},
	})

	ms.MustAdd(&driver.Method{
		Name:   "status",
		Params: []string{},
		Call: func(args []string) (any, error) {
			d.EnsureSession()
			d.mu.Lock()
			defer d.mu.Unlock()
			switch {
			case d.cleaning:
				return fmt.Sprintf("cleaning fan_speed=%d", d.fanSpeed), nil
			case d.docked:
				return "docked", nil
			default:
				return "idle", nil
			}
		},
	})

	return ms
}

// SessionState returns the serializable vacuum state.
func (d *VacuumDriver) SessionState() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return map[string]any{
		"cleaning":  d.cleaning,
		"docked":    d.docked,
		"fan_speed": d.fanSpeed,
	}
}

// RestoreSession applies a snapshotted vacuum state.
func (d *VacuumDriver) RestoreSession(state map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cleaning = driver.StateBool(state, "cleaning", d.cleaning)
	d.docked = driver.StateBool(state, "docked", d.docked)
	d.fanSpeed = driver.StateInt(state, "fan_speed", d.fanSpeed)
}
