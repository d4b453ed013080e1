// Package bridge is the outward face of the device bridge: enumerate
// driver types, construct an instance by name, and operate instances
// through opaque handles without compile-time knowledge of any driver.
//
// Structural failures (unknown type name, unreconstructible handle) are
// hard errors; per-call invocation failures are folded into the returned
// result string so one bad call cannot end a session driving many.
package bridge

import (
	"fmt"

	"github.com/devbridge-project/devbridge-go/pkg/catalog"
	"github.com/devbridge-project/devbridge-go/pkg/driver"
	"github.com/devbridge-project/devbridge-go/pkg/handle"
	"github.com/devbridge-project/devbridge-go/pkg/invoke"
	"github.com/devbridge-project/devbridge-go/pkg/log"
	"github.com/devbridge-project/devbridge-go/pkg/registry"
)

// Bridge binds the registry, codec, catalog, and invoker into one facade.
type Bridge struct {
	reg    *registry.Registry
	codec  *handle.Codec
	logger log.Logger
}

// New creates a bridge over the given registry.
// A nil registry uses the process-wide default; a nil logger disables
// logging.
func New(reg *registry.Registry, logger log.Logger) *Bridge {
	if reg == nil {
		reg = registry.Default()
	}
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Bridge{
		reg:    reg,
		codec:  handle.NewCodec(reg),
		logger: logger,
	}
}

// Registry returns the registry this bridge operates on.
func (b *Bridge) Registry() *registry.Registry {
	return b.reg
}

// TypeNames lists the available device type names.
func (b *Bridge) TypeNames() []string {
	return b.reg.TypeNames()
}

// Create constructs a driver instance by type name. The name must exactly
// match a discovered implementation; otherwise Create fails with
// registry.ErrTypeNotFound. The construction itself may prepare session
// state but performs no I/O beyond what the chosen constructor does.
func (b *Bridge) Create(address, credential, typeName string) (driver.Driver, error) {
	desc, ok := b.reg.Lookup(typeName)
	if !ok {
		err := fmt.Errorf("%w: %q", registry.ErrTypeNotFound, typeName)
		b.logError(typeName, err)
		return nil, err
	}

	d, err := desc.New(address, credential)
	if err != nil {
		err = fmt.Errorf("creating %q: %w", typeName, err)
		b.logError(typeName, err)
		return nil, err
	}

	event := log.NewEvent(log.CategoryCreate)
	event.TypeName = typeName
	b.logger.Log(event)

	return d, nil
}

// NewHandle constructs a driver instance by type name and returns its
// encoded handle.
func (b *Bridge) NewHandle(address, credential, typeName string) ([]byte, error) {
	d, err := b.Create(address, credential, typeName)
	if err != nil {
		return nil, err
	}

	blob, err := b.codec.Encode(d)
	if err != nil {
		b.logError(typeName, err)
		return nil, err
	}

	event := log.NewEvent(log.CategoryEncode)
	event.TypeName = typeName
	event.HandleSize = len(blob)
	b.logger.Log(event)

	return blob, nil
}

// Encode converts a live instance into a handle.
func (b *Bridge) Encode(d driver.Driver) ([]byte, error) {
	return b.codec.Encode(d)
}

// Decode rehydrates a handle into a live instance. Fails with
// handle.ErrDecode for malformed handles or handles referencing a type
// absent from this bridge's registry.
func (b *Bridge) Decode(blob []byte) (driver.Driver, error) {
	d, err := b.codec.Decode(blob)
	if err != nil {
		b.logError("", err)
		return nil, err
	}

	event := log.NewEvent(log.CategoryDecode)
	event.TypeName = d.TypeName()
	event.HandleSize = len(blob)
	b.logger.Log(event)

	return d, nil
}

// DescribeHandle decodes a handle and returns the method catalog of the
// rehydrated instance. The only failure is handle.ErrDecode.
func (b *Bridge) DescribeHandle(blob []byte) (map[string]string, error) {
	d, err := b.Decode(blob)
	if err != nil {
		return nil, err
	}
	return catalog.Describe(d), nil
}

// InvokeHandle decodes a handle and invokes the named method on the
// rehydrated instance with positional string arguments. The returned
// error covers only handle.ErrDecode; every invocation failure is folded
// into the result string.
func (b *Bridge) InvokeHandle(blob []byte, methodName string, args []string) (string, error) {
	d, err := b.Decode(blob)
	if err != nil {
		return "", err
	}

	result := invoke.Call(d, methodName, args)

	event := log.NewEvent(log.CategoryInvoke)
	event.TypeName = d.TypeName()
	event.Method = methodName
	b.logger.Log(event)

	return result, nil
}

func (b *Bridge) logError(typeName string, err error) {
	event := log.NewEvent(log.CategoryError)
	event.TypeName = typeName
	event.Err = err
	b.logger.Log(event)
}
