package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/devbridge-project/devbridge-go/pkg/driver"
	"github.com/devbridge-project/devbridge-go/pkg/log"
)

// Registry errors.
var (
	ErrDuplicateType  = errors.New("duplicate device type")
	ErrTypeNotFound   = errors.New("device type not found")
	ErrNilConstructor = errors.New("nil constructor")
	ErrEmptyTypeName  = errors.New("empty device type name")
)

// Descriptor describes one discovered driver implementation.
// Descriptors are immutable once registered.
type Descriptor struct {
	// Name is the public identity of the implementation, derived from its
	// declared type, e.g. "LampDriver". Exact and case-sensitive.
	Name string

	// New builds an instance from connection parameters.
	New driver.Constructor
}

// Loader is a hook that may register additional driver implementations,
// e.g. by opening shared-object plugins. Loaders run on every discovery
// pass; a failing loader is skipped silently.
type Loader func() error

// Registry holds the registration table for one process (or one test).
// The discovered set is read-mostly published state, safe to share across
// concurrent callers.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]Descriptor
	order       []string
	loaders     []Loader
	logger      log.Logger
}

// New creates an empty registry logging to the given logger.
// A nil logger disables logging.
func New(logger log.Logger) *Registry {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Registry{
		descriptors: make(map[string]Descriptor),
		logger:      logger,
	}
}

// Register adds a driver implementation to the table.
// Registering a name that is already present fails with ErrDuplicateType.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return ErrEmptyTypeName
	}
	if d.New == nil {
		return fmt.Errorf("%w: %q", ErrNilConstructor, d.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.descriptors[d.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateType, d.Name)
	}
	r.descriptors[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// MustRegister is Register for init-time registration; it panics on error.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic("registry: " + err.Error())
	}
}

// AddLoader adds a loader hook that runs on every discovery pass.
func (r *Registry) AddLoader(l Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders = append(r.loaders, l)
}

// Discover runs the loader hooks and returns the current descriptor set
// in registration order. Broken loaders are skipped; discovery itself
// never fails. Repeated calls return membership-equivalent sets modulo
// implementations registered between calls.
func (r *Registry) Discover() []Descriptor {
	r.runLoaders()

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.descriptors[name])
	}

	event := log.NewEvent(log.CategoryDiscover)
	event.Message = fmt.Sprintf("%d device types", len(out))
	r.logger.Log(event)

	return out
}

// TypeNames returns the names of all discovered implementations in
// registration order.
func (r *Registry) TypeNames() []string {
	names := make([]string, 0)
	for _, d := range r.Discover() {
		names = append(names, d.Name)
	}
	return names
}

// Lookup runs a discovery pass and returns the descriptor registered under
// the given name, if any. Matching is exact and case-sensitive.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.runLoaders()

	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[name]
	return d, ok
}

// runLoaders executes all loader hooks, swallowing failures.
func (r *Registry) runLoaders() {
	r.mu.RLock()
	loaders := make([]Loader, len(r.loaders))
	copy(loaders, r.loaders)
	logger := r.logger
	r.mu.RUnlock()

	for _, l := range loaders {
		if err := l(); err != nil {
			event := log.NewEvent(log.CategoryDiscover)
			event.Message = "driver module skipped"
			event.Err = err
			logger.Log(event)
		}
	}
}

// defaultRegistry is the process-wide table populated by driver packages
// from their init functions.
var defaultRegistry = New(log.NoopLogger{})

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a driver implementation to the process-wide registry.
func Register(d Descriptor) error {
	return defaultRegistry.Register(d)
}

// MustRegister adds a driver implementation to the process-wide registry,
// panicking on error. Driver packages call this from init.
func MustRegister(d Descriptor) {
	defaultRegistry.MustRegister(d)
}

// Discover runs a discovery pass on the process-wide registry.
func Discover() []Descriptor {
	return defaultRegistry.Discover()
}

// TypeNames lists the process-wide registry's type names.
func TypeNames() []string {
	return defaultRegistry.TypeNames()
}

// Lookup finds a driver implementation by name in the process-wide
// registry.
func Lookup(name string) (Descriptor, bool) {
	return defaultRegistry.Lookup(name)
}
