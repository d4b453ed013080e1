package driver

import (
	"errors"
	"testing"
)

func TestMethodSetOrdering(t *testing.T) {
	s := NewMethodSet()
	for _, name := range []string{"turnOn", "turnOff", "setBrightness"} {
		s.MustAdd(&Method{Name: name, Params: []string{}})
	}

	names := s.Names()
	want := []string{"turnOn", "turnOff", "setBrightness"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestMethodSetDuplicate(t *testing.T) {
	s := NewMethodSet()
	if err := s.Add(&Method{Name: "toggle"}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	err := s.Add(&Method{Name: "toggle"})
	if !errors.Is(err, ErrDuplicateMethod) {
		t.Errorf("got %v, want ErrDuplicateMethod", err)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

func TestMethodSetGet(t *testing.T) {
	s := NewMethodSet()
	s.MustAdd(&Method{Name: "status", Params: []string{}})

	m, ok := s.Get("status")
	if !ok || m.Name != "status" {
		t.Errorf("Get(status) = %v, %v", m, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing) reported ok")
	}
}

func TestMethodSetNamesIsCopy(t *testing.T) {
	s := NewMethodSet()
	s.MustAdd(&Method{Name: "a"})
	names := s.Names()
	names[0] = "clobbered"
	if got := s.Names()[0]; got != "a" {
		t.Errorf("internal order mutated: %q", got)
	}
}

func TestBaseSessionLifecycle(t *testing.T) {
	b := NewBase("10.0.0.5", "tok123")

	if b.Address() != "10.0.0.5" {
		t.Errorf("address = %q", b.Address())
	}
	if b.Credential() != "tok123" {
		t.Errorf("credential = %q", b.Credential())
	}
	if b.SessionActive() {
		t.Error("session active before first use")
	}

	id := b.EnsureSession()
	if id == "" {
		t.Fatal("empty session ID")
	}
	if !b.SessionActive() {
		t.Error("session not active after EnsureSession")
	}
	if again := b.EnsureSession(); again != id {
		t.Errorf("session ID changed: %q != %q", again, id)
	}

	b.ResetSession()
	if b.SessionActive() {
		t.Error("session active after reset")
	}
	if fresh := b.EnsureSession(); fresh == id {
		t.Error("reset did not produce a fresh session")
	}
}

func TestStateHelpers(t *testing.T) {
	state := map[string]any{
		"brightness": uint64(80),
		"color_temp": int64(2700),
		"level":      float64(3),
		"power":      true,
		"mode":       "eco",
	}

	if got := StateInt(state, "brightness", 0); got != 80 {
		t.Errorf("brightness = %d", got)
	}
	if got := StateInt(state, "color_temp", 0); got != 2700 {
		t.Errorf("color_temp = %d", got)
	}
	if got := StateInt(state, "level", 0); got != 3 {
		t.Errorf("level = %d", got)
	}
	if got := StateInt(state, "missing", 42); got != 42 {
		t.Errorf("missing fallback = %d", got)
	}
	if got := StateInt(state, "mode", 7); got != 7 {
		t.Errorf("non-numeric fallback = %d", got)
	}
	if !StateBool(state, "power", false) {
		t.Error("power = false")
	}
	if StateBool(state, "missing", false) {
		t.Error("missing bool fallback wrong")
	}
	if got := StateString(state, "mode", ""); got != "eco" {
		t.Errorf("mode = %q", got)
	}
	if got := StateString(state, "missing", "dflt"); got != "dflt" {
		t.Errorf("missing string fallback = %q", got)
	}
}
