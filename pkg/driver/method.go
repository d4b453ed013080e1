package driver

import (
	"errors"
)

// Method errors.
var (
	ErrDuplicateMethod = errors.New("duplicate method name")
)

// Method describes one invokable operation with its typed invocation thunk.
type Method struct {
	// Name is the operation name, e.g. "setColorTemperature".
	// Names beginning with "_" are implementation-private and are not
	// listed by the catalog.
	Name string

	// Params lists parameter names in declaration order. An empty slice
	// means the method takes no parameters; nil means the signature is
	// unknown and the catalog records its sentinel instead.
	Params []string

	// Call invokes the operation with positional string arguments.
	// The thunk coerces arguments to whatever types it needs; the bridge
	// performs no coercion. A nil Call marks the entry as not callable.
	Call func(args []string) (any, error)
}

// MethodSet is an ordered, name-indexed table of methods.
type MethodSet struct {
	byName map[string]*Method
	order  []string
}

// NewMethodSet creates an empty method set.
func NewMethodSet() *MethodSet {
	return &MethodSet{
		byName: make(map[string]*Method),
	}
}

// Add appends a method to the set. Adding a name that is already present
// fails with ErrDuplicateMethod.
func (s *MethodSet) Add(m *Method) error {
	if _, exists := s.byName[m.Name]; exists {
		return ErrDuplicateMethod
	}
	s.byName[m.Name] = m
	s.order = append(s.order, m.Name)
	return nil
}

// MustAdd is Add for construction-time tables; it panics on duplicates.
func (s *MethodSet) MustAdd(m *Method) {
	if err := s.Add(m); err != nil {
		panic("driver: duplicate method " + m.Name)
	}
}

// Get returns the method with the given name.
func (s *MethodSet) Get(name string) (*Method, bool) {
	m, ok := s.byName[name]
	return m, ok
}

// Names returns the method names in declaration order.
func (s *MethodSet) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of methods in the set.
func (s *MethodSet) Len() int {
	return len(s.order)
}
