// Package lamp implements a dimmable white-spectrum lamp driver.
package lamp

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/devbridge-project/devbridge-go/pkg/driver"
	"github.com/devbridge-project/devbridge-go/pkg/registry"
)

// Color temperature limits in Kelvin.
const (
	MinColorTemp = 1700
	MaxColorTemp = 6500
)

// LampDriver simulates a lamp with power, brightness, and color
// temperature state.
type LampDriver struct {
	driver.Base

	mu         sync.Mutex
	on         bool
	brightness int
	colorTemp  int

	methods *driver.MethodSet
}

func init() {
	registry.MustRegister(registry.Descriptor{Name: "LampDriver", New: New})
}

// New constructs a lamp driver for the given connection parameters.
func New(address, credential string) (driver.Driver, error) {
	d := &LampDriver{
		brightness: 100,
		colorTemp:  4000,
	}
	d.Base = driver.NewBase(address, credential)
	d.methods = d.buildMethods()
	return d, nil
}

// TypeName returns the registered type identity.
func (d *LampDriver) TypeName() string {
	return "LampDriver"
}

// Methods returns the invokable operation table.
func (d *LampDriver) Methods() *driver.MethodSet {
	return d.methods
}

func (d *LampDriver) buildMethods() *driver.MethodSet {
	ms := driver.NewMethodSet()

	ms.MustAdd(&driver.Method{
		Name:   "turnOn",
		Params: []string{},
		Call: func(args []string) (any, error) {
			d.EnsureSession()
			d.mu.Lock()
			defer d.mu.Unlock()
			d.on = true
			return "ok", nil
		},
	})

	ms.MustAdd(&driver.Method{
		Name:   "turnOff",
		Params: []string{},
		Call: func(args []string) (any, error) {
			d.EnsureSession()
			d.mu.Lock()
			defer d.mu.Unlock()
			d.on = false
			return "ok", nil
		},
	})

	ms.MustAdd(&driver.Method{
		Name:   "setBrightness",
		Params: []string{"level"},
		Call: func(args []string) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("setBrightness expects 1 argument, got %d", len(args))
			}
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("invalid brightness %q: %w", args[0], err)
			}
			if level < 1 || level > 100 {
				return nil, fmt.Errorf("brightness %d out of range 1..100", level)
			}
			d.EnsureSession()
			d.mu.Lock()
			defer d.mu.Unlock()
			d.brightness = level
			return level, nil
		},
	})

	ms.MustAdd(&driver.Method{
		Name:   "setColorTemperature",
		Params: []string{"value"},
		Call: func(args []string) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("setColorTemperature expects 1 argument, got %d", len(args))
			}
			value, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("invalid color temperature %q: %w", args[0], err)
			}
			if value < MinColorTemp || value > MaxColorTemp {
				return nil, fmt.Errorf("color temperature %d out of range %d..%d", value, MinColorTemp, MaxColorTemp)
			}
			d.EnsureSession()
			d.mu.Lock()
			defer d.mu.Unlock()
			d.colorTemp = value
			return value, nil
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
				return fmt.Sprintf("on brightness=%d color_temp=%d", d.brightness, d.colorTemp), nil
			}
			return "off", nil
		},
	})

	return ms
}

// SessionState returns the serializable lamp state.
func (d *LampDriver) SessionState() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return map[string]any{
		"power":      d.on,
		"brightness": d.brightness,
		"color_temp": d.colorTemp,
	}
}

// RestoreSession applies a snapshotted lamp state.
func (d *LampDriver) RestoreSession(state map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.on = driver.StateBool(state, "power", d.on)
	d.brightness = driver.StateInt(state, "brightness", d.brightness)
	d.colorTemp = driver.StateInt(state, "color_temp", d.colorTemp)
}
