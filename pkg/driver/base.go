package driver

import (
	"sync"

	"github.com/google/uuid"
)

// Base holds the connection state shared by driver implementations:
// address, credential, and a lazily established session. Implementations
// embed Base and add their own device state on top.
//
// A session here is simulated connection state. It is never carried inside
// a handle; a decoded instance starts without a session and re-establishes
// one on first use.
type Base struct {
	mu sync.Mutex

	address    string
	credential string

	// sessionID is set once a session has been established.
	sessionID string
}

// NewBase creates the connection state for the given parameters.
func NewBase(address, credential string) Base {
	return Base{
		address:    address,
		credential: credential,
	}
}

// Address returns the device network address.
func (b *Base) Address() string {
	return b.address
}

// Credential returns the device access credential.
func (b *Base) Credential() string {
	return b.credential
}

// EnsureSession establishes the session if none is active and returns its
// ID. Driver thunks call this before touching device state.
func (b *Base) EnsureSession() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sessionID == "" {
		b.sessionID = uuid.NewString()
	}
	return b.sessionID
}

// SessionActive reports whether a session has been established.
func (b *Base) SessionActive() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessionID != ""
}

// ResetSession drops the current session. The next EnsureSession call
// establishes a fresh one.
func (b *Base) ResetSession() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessionID = ""
}
