package bridge

import (
	"sync"

	"github.com/devbridge-project/devbridge-go/pkg/driver"
)

var (
	defaultOnce   sync.Once
	defaultBridge *Bridge
)

// Default returns the bridge over the process-wide registry.
func Default() *Bridge {
	defaultOnce.Do(func() {
		defaultBridge = New(nil, nil)
	})
	return defaultBridge
}

// TypeNames lists the available device type names on the default bridge.
func TypeNames() []string {
	return Default().TypeNames()
}

// Create constructs a driver instance by type name on the default bridge.
func Create(address, credential, typeName string) (driver.Driver, error) {
	return Default().Create(address, credential, typeName)
}

// NewHandle constructs an instance and returns its encoded handle,
// using the default bridge.
func NewHandle(address, credential, typeName string) ([]byte, error) {
	return Default().NewHandle(address, credential, typeName)
}

// DescribeHandle returns the method catalog behind a handle, using the
// default bridge.
func DescribeHandle(blob []byte) (map[string]string, error) {
	return Default().DescribeHandle(blob)
}

// InvokeHandle invokes a named method behind a handle, using the default
// bridge.
func InvokeHandle(blob []byte, methodName string, args []string) (string, error) {
	return Default().InvokeHandle(blob, methodName, args)
}
