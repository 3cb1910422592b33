package value_test

import (
	"testing"

	"github.com/koto-lang/koto/value"
)

// TestMapInsertionOrder tests that Entries preserves insertion order even
// after an update to an existing key.
func TestMapInsertionOrder(t *testing.T) {
	m := value.NewMap()
	if err := m.Set(value.String("foo"), value.Number(42)); err != nil {
		t.Fatal(err)
	}
	if err := m.Set(value.String("bar"), value.Number(99)); err != nil {
		t.Fatal(err)
	}
	if err := m.Set(value.String("foo"), value.Number(1)); err != nil {
		t.Fatal(err)
	}
	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if entries[0][0] != value.String("foo") || entries[1][0] != value.String("bar") {
		t.Errorf("insertion order not preserved: %v", entries)
	}
	if entries[0][1] != value.Number(1) {
		t.Errorf("update did not take effect: %v", entries[0])
	}
}

// TestMapUnhashableKey tests that List and Map keys are rejected with
// KeyError.
func TestMapUnhashableKey(t *testing.T) {
	m := value.NewMap()
	cases := map[string]value.Value{
		"List": value.NewList(),
		"Map":  value.NewMap(),
	}
	for name, key := range cases {
		t.Run(name, func(t *testing.T) {
			err := m.Set(key, value.Number(1))
			if _, ok := value.AsError(err, value.KeyError); !ok {
				t.Errorf("expected KeyError, got %v", err)
			}
		})
	}
}

// TestMapMissingKey tests that Get on an absent key fails with KeyError.
func TestMapMissingKey(t *testing.T) {
	m := value.NewMap()
	_, err := m.Get(value.String("missing"))
	if _, ok := value.AsError(err, value.KeyError); !ok {
		t.Errorf("expected KeyError, got %v", err)
	}
}
