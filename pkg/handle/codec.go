package handle

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/devbridge-project/devbridge-go/pkg/driver"
	"github.com/devbridge-project/devbridge-go/pkg/registry"
)

// Version is the current handle format version. Decoding rejects handles
// produced by a different version.
const Version uint8 = 1

// ErrDecode is the failure kind for malformed, truncated, or
// unreconstructible handles.
var ErrDecode = errors.New("handle decode failed")

// encMode is the CBOR encoder mode for handles.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for handles.
var decMode cbor.DecMode

func init() {
	var err error

	// Configure encoder for deterministic output
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical, // Deterministic key ordering
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeUnix,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Configure decoder to be lenient for forward compatibility
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet, // Ignore duplicate keys (last wins)
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// envelope is the wire form of a handle.
type envelope struct {
	Version    uint8          `cbor:"1,keyasint"`
	TypeName   string         `cbor:"2,keyasint"`
	Address    string         `cbor:"3,keyasint"`
	Credential string         `cbor:"4,keyasint"`
	Session    map[string]any `cbor:"5,keyasint,omitempty"`
}

// Codec encodes driver instances against a registry. The registry defines
// the universe of type names a handle may reference when decoded.
type Codec struct {
	reg *registry.Registry
}

// NewCodec creates a codec bound to the given registry.
// A nil registry binds to the process-wide default.
func NewCodec(reg *registry.Registry) *Codec {
	if reg == nil {
		reg = registry.Default()
	}
	return &Codec{reg: reg}
}

// Encode serializes the instance's reconstructible state into an opaque
// handle. Encode is total over any instance produced by the factory.
func (c *Codec) Encode(d driver.Driver) ([]byte, error) {
	env := envelope{
		Version:    Version,
		TypeName:   d.TypeName(),
		Address:    d.Address(),
		Credential: d.Credential(),
	}
	if s, ok := d.(driver.SessionStater); ok {
		env.Session = s.SessionState()
	}

	blob, err := encMode.Marshal(&env)
	if err != nil {
		return nil, fmt.Errorf("failed to encode handle for %s: %w", d.TypeName(), err)
	}
	return blob, nil
}

// Decode reconstructs an instance from a previously produced handle.
// The decoded instance is independent of the one the handle was derived
// from; mutations on one do not propagate to the other.
func (c *Codec) Decode(blob []byte) (driver.Driver, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: empty handle", ErrDecode)
	}

	var env envelope
	if err := decMode.Unmarshal(blob, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if env.Version != Version {
		return nil, fmt.Errorf("%w: unsupported handle version %d", ErrDecode, env.Version)
	}
	if env.TypeName == "" {
		return nil, fmt.Errorf("%w: missing device type", ErrDecode)
	}

	desc, ok := c.reg.Lookup(env.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown device type %q", ErrDecode, env.TypeName)
	}

	// Re-run construction; never deserialize a live object graph.
	d, err := desc.New(env.Address, env.Credential)
	if err != nil {
		return nil, fmt.Errorf("%w: constructing %q: %v", ErrDecode, env.TypeName, err)
	}

	if len(env.Session) > 0 {
		if s, ok := d.(driver.SessionStater); ok {
			s.RestoreSession(env.Session)
		}
	}

	return d, nil
}
