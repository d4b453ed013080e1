package handle

import (
	"errors"
	"sync"
	"testing"

	"github.com/devbridge-project/devbridge-go/pkg/driver"
	"github.com/devbridge-project/devbridge-go/pkg/registry"
)

// counterDriver is a test driver with a serializable session field.
type counterDriver struct {
	driver.Base
	mu      sync.Mutex
	counter int
	methods *driver.MethodSet
}

func newCounterDriver(address, credential string) (driver.Driver, error) {
	d := &counterDriver{}
	d.Base = driver.NewBase(address, credential)

	ms := driver.NewMethodSet()
	ms.MustAdd(&driver.Method{
		Name:   "increment",
		Params: []string{},
		Call: func(args []string) (any, error) {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.counter++
			return d.counter, nil
		},
	})
	d.methods = ms
	return d, nil
}

func (d *counterDriver) TypeName() string           { return "CounterDriver" }
func (d *counterDriver) Methods() *driver.MethodSet { return d.methods }

func (d *counterDriver) SessionState() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return map[string]any{"counter": d.counter}
}

func (d *counterDriver) RestoreSession(state map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.counter = driver.StateInt(state, "counter", 0)
}

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New(nil)
	r.MustRegister(registry.Descriptor{Name: "CounterDriver", New: newCounterDriver})
	return r
}

func TestHandleRoundTrip(t *testing.T) {
	codec := NewCodec(newTestRegistry(t))

	orig, err := newCounterDriver("10.0.0.5", "tok123")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	orig.(*counterDriver).counter = 7

	blob, err := codec.Encode(orig)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("empty handle")
	}

	decoded, err := codec.Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.TypeName() != "CounterDriver" {
		t.Errorf("type = %q", decoded.TypeName())
	}
	if decoded.Address() != "10.0.0.5" {
		t.Errorf("address = %q", decoded.Address())
	}
	if decoded.Credential() != "tok123" {
		t.Errorf("credential = %q", decoded.Credential())
	}
	if got := decoded.(*counterDriver).counter; got != 7 {
		t.Errorf("session counter = %d, want 7", got)
	}
}

func TestDecodedInstanceIsIndependent(t *testing.T) {
	codec := NewCodec(newTestRegistry(t))

	orig, _ := newCounterDriver("10.0.0.5", "tok123")
	blob, err := codec.Encode(orig)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := codec.Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Mutating the decoded copy must not propagate back.
	decoded.(*counterDriver).counter = 99
	if got := orig.(*counterDriver).counter; got != 0 {
		t.Errorf("original mutated: counter = %d", got)
	}

	// Handles are value types: the blob still decodes to the saved state.
	again, err := codec.Decode(blob)
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}
	if got := again.(*counterDriver).counter; got != 0 {
		t.Errorf("re-decoded counter = %d, want 0", got)
	}
}

func TestDecodeRejectsMalformedHandles(t *testing.T) {
	codec := NewCodec(newTestRegistry(t))

	orig, _ := newCounterDriver("10.0.0.5", "tok123")
	valid, err := codec.Encode(orig)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	tests := []struct {
		name string
		blob []byte
	}{
		{name: "nil", blob: nil},
		{name: "empty", blob: []byte{}},
		{name: "garbage", blob: []byte("not a handle")},
		{name: "truncated", blob: valid[:len(valid)/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.blob)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("got %v, want ErrDecode", err)
			}
		})
	}
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	full := NewCodec(newTestRegistry(t))
	empty := NewCodec(registry.New(nil))

	orig, _ := newCounterDriver("10.0.0.5", "tok123")
	blob, err := full.Encode(orig)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// The type is absent from the decoding registry's universe.
	_, err = empty.Decode(blob)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("got %v, want ErrDecode", err)
	}
}

func TestDecodeRejectsWrongVersion(t *testing.T) {
	codec := NewCodec(newTestRegistry(t))

	env := envelope{
		Version:    Version + 1,
		TypeName:   "CounterDriver",
		Address:    "10.0.0.5",
		Credential: "tok123",
	}
	blob, err := encMode.Marshal(&env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	_, err = codec.Decode(blob)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("got %v, want ErrDecode", err)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	codec := NewCodec(newTestRegistry(t))
	d, _ := newCounterDriver("10.0.0.5", "tok123")

	a, err := codec.Encode(d)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	b, err := codec.Encode(d)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(a) != string(b) {
		t.Error("two encodes of the same state differ")
	}
}

func TestSessionlessDriverRoundTrips(t *testing.T) {
	r := registry.New(nil)
	r.MustRegister(registry.Descriptor{Name: "PlainDriver", New: newPlainDriver})
	codec := NewCodec(r)

	d, _ := newPlainDriver("192.168.1.2", "secret")
	blob, err := codec.Encode(d)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := codec.Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Address() != "192.168.1.2" || decoded.Credential() != "secret" {
		t.Errorf("connection parameters lost: %q %q", decoded.Address(), decoded.Credential())
	}
}

// plainDriver has no session state at all.
type plainDriver struct {
	driver.Base
}

func newPlainDriver(address, credential string) (driver.Driver, error) {
	d := &plainDriver{}
	d.Base = driver.NewBase(address, credential)
	return d, nil
}

func (d *plainDriver) TypeName() string           { return "PlainDriver" }
func (d *plainDriver) Methods() *driver.MethodSet { return driver.NewMethodSet() }
