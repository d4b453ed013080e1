package vacuum

import (
	"fmt"
	"strconv"

	"github.com/devbridge-project/devbridge-go/pkg/driver"
	"github.com/devbridge-project/devbridge-go/pkg/registry"
)

// Water level limits.
const (
	MinWaterLevel = 1
	MaxWaterLevel = 3
)

// MopVacuumDriver specializes VacuumDriver with a mopping attachment.
// It inherits the vacuum operation set and adds setWaterLevel.
type MopVacuumDriver struct {
	VacuumDriver

	waterLevel int
}

func init() {
	registry.MustRegister(registry.Descriptor{Name: "MopVacuumDriver", New: NewMop})
}

// NewMop constructs a mopping vacuum driver.
func NewMop(address, credential string) (driver.Driver, error) {
	m := &MopVacuumDriver{waterLevel: 2}
	m.init(address, credential)

	ms := m.buildMethods()
	ms.MustAdd(&driver.Method{
		Name:   "setWaterLevel",
		Params: []string{"level"},
		Call: func(args []string) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("setWaterLevel expects 1 argument, got %d", len(args))
			}
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("invalid water level %q: %w", args[0], err)
			}
			if level < MinWaterLevel || level > MaxWaterLevel {
				return nil, fmt.Errorf("water level %d out of range %d..%d", level, MinWaterLevel, MaxWaterLevel)
			}
			m.EnsureSession()
			m.mu.Lock()
			defer m.mu.Unlock()
			m.waterLevel = level
			return level, nil
		},
	})
	m.methods = ms

	return m, nil
}

// TypeName returns the registered type identity.
func (m *MopVacuumDriver) TypeName() string {
	return "MopVacuumDriver"
}

// SessionState extends the vacuum state with the water level.
func (m *MopVacuumDriver) SessionState() map[string]any {
	state := m.VacuumDriver.SessionState()
	m.mu.Lock()
	defer m.mu.Unlock()
	state["water_level"] = m.waterLevel
	return state
}

// RestoreSession applies a snapshotted mop vacuum state.
func (m *MopVacuumDriver) RestoreSession(state map[string]any) {
	m.VacuumDriver.RestoreSession(state)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waterLevel = driver.StateInt(state, "water_level", m.waterLevel)
}
