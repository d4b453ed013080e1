package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devbridge-project/devbridge-go/pkg/driver"
)

// fakeDriver exposes a configurable method set.
type fakeDriver struct {
	driver.Base
	methods *driver.MethodSet
}

func (d *fakeDriver) TypeName() string           { return "FakeDriver" }
func (d *fakeDriver) Methods() *driver.MethodSet { return d.methods }

func noopCall(args []string) (any, error) { return "ok", nil }

func TestDescribe(t *testing.T) {
	ms := driver.NewMethodSet()
	ms.MustAdd(&driver.Method{Name: "turnOn", Params: []string{}, Call: noopCall})
	ms.MustAdd(&driver.Method{Name: "setColorTemperature", Params: []string{"value"}, Call: noopCall})
	ms.MustAdd(&driver.Method{Name: "moveTo", Params: []string{"x", "y"}, Call: noopCall})
	d := &fakeDriver{methods: ms}

	got := Describe(d)

	assert.Equal(t, map[string]string{
		"turnOn":              "()",
		"setColorTemperature": "(value)",
		"moveTo":              "(x, y)",
	}, got)
}

func TestDescribeSkipsPrivateEntries(t *testing.T) {
	ms := driver.NewMethodSet()
	ms.MustAdd(&driver.Method{Name: "toggle", Params: []string{}, Call: noopCall})
	ms.MustAdd(&driver.Method{Name: "_handshake", Params: []string{}, Call: noopCall})
	d := &fakeDriver{methods: ms}

	got := Describe(d)

	assert.Contains(t, got, "toggle")
	assert.NotContains(t, got, "_handshake")
}

func TestDescribeSkipsNotCallableEntries(t *testing.T) {
	ms := driver.NewMethodSet()
	ms.MustAdd(&driver.Method{Name: "ghost", Params: []string{}})
	d := &fakeDriver{methods: ms}

	got := Describe(d)

	assert.Empty(t, got)
}

func TestDescribeRecordsSentinelForUnknownSignature(t *testing.T) {
	ms := driver.NewMethodSet()
	ms.MustAdd(&driver.Method{Name: "rawCommand", Call: noopCall})
	d := &fakeDriver{methods: ms}

	got := Describe(d)

	assert.Equal(t, NoSignature, got["rawCommand"])
}

func TestDescribeIsSnapshot(t *testing.T) {
	ms := driver.NewMethodSet()
	ms.MustAdd(&driver.Method{Name: "toggle", Params: []string{}, Call: noopCall})
	d := &fakeDriver{methods: ms}

	before := Describe(d)
	assert.Len(t, before, 1)

	// Dynamic feature negotiation adds an operation; a fresh Describe
	// must see it, the earlier snapshot must not change.
	ms.MustAdd(&driver.Method{Name: "status", Params: []string{}, Call: noopCall})

	after := Describe(d)
	assert.Len(t, after, 2)
	assert.Len(t, before, 1)
}
