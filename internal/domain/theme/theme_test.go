package theme

import "testing"

func TestStartsLight(t *testing.T) {
	s := NewStore()
	if s.Dark() {
		t.Fatal("a new store must start in light mode")
	}
}

func TestToggleFlips(t *testing.T) {
	s := NewStore()

	s.Toggle()
	if !s.Dark() {
		t.Fatal("expected dark after one toggle")
	}
	s.Toggle()
	if s.Dark() {
		t.Fatal("expected light after two toggles")
	}
}

func TestStylesDeriveFromFlag(t *testing.T) {
	s := NewStore()
	light := s.Styles()

	s.Toggle()
	dark := s.Styles()

	if light.Error.GetForeground() == dark.Error.GetForeground() {
		t.Fatal("light and dark styles must differ")
	}

	// Toggling back yields the same configuration: derivation is
	// deterministic in the flag.
	s.Toggle()
	again := s.Styles()
	if light.Error.GetForeground() != again.Error.GetForeground() {
		t.Fatal("style derivation must be deterministic")
	}
}
