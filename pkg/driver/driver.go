package driver

// Driver is the common device capability. A live driver instance exposes
// its declared type identity, its connection parameters, and a table of
// named callable operations.
//
// A Driver instance is not safe for concurrent use by multiple callers;
// ownership must be exclusive per logical session. The registry and the
// handle codec may hold an instance transiently during decode-and-call.
type Driver interface {
	// TypeName returns the declared type identity, e.g. "LampDriver".
	// It is the name the implementation registered under.
	TypeName() string

	// Address returns the device network address.
	Address() string

	// Credential returns the device access credential.
	Credential() string

	// Methods returns the invokable operation table. The returned set
	// reflects the operations available at call time; callers must not
	// cache it across feature changes.
	Methods() *MethodSet
}

// Constructor builds a driver instance from connection parameters.
// Constructing may prepare session state but must not assume the device
// is reachable; any connection is established lazily on first use.
type Constructor func(address, credential string) (Driver, error)

// SessionStater is optionally implemented by drivers whose handles carry
// reconstructible session fields beyond address and credential. Only
// declared-serializable values belong here; live resources (sockets,
// timers) are re-established lazily after a handle round trip, never
// preserved.
type SessionStater interface {
	// SessionState returns a snapshot of the serializable session fields.
	SessionState() map[string]any

	// RestoreSession applies a previously snapshotted state to a freshly
	// constructed instance. Unknown or malformed fields are ignored.
	RestoreSession(state map[string]any)
}
