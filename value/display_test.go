package value_test

import (
	"testing"

	"github.com/koto-lang/koto/value"
)

// TestListStringCycle tests that a list containing itself renders a
// placeholder instead of deadlocking on its own mutex.
func TestListStringCycle(t *testing.T) {
	l := value.NewList(value.Number(1))
	l.Append(l)
	got := l.String()
	want := "[1, [...]]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestMapStringCycle tests that a map containing itself as a value
// renders a placeholder instead of deadlocking.
func TestMapStringCycle(t *testing.T) {
	m := value.NewMap()
	if err := m.Set(value.String("self"), m); err != nil {
		t.Fatal(err)
	}
	got := m.String()
	want := "{self: {...}}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestObjectStringCycle tests that an object whose fields cycle back to
// itself renders a placeholder instead of deadlocking.
func TestObjectStringCycle(t *testing.T) {
	o := value.NewObject()
	if err := o.Fields().Set(value.String("self"), o); err != nil {
		t.Fatal(err)
	}
	got := o.String()
	want := "{self: {...}}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestDisplayNested tests ordinary (non-cyclic) nested rendering through
// List, Map, and Tuple still produces readable output.
func TestDisplayNested(t *testing.T) {
	inner := value.NewTuple(value.Number(1), value.String("x"))
	l := value.NewList(inner, value.Number(2))
	got := l.String()
	want := "[(1, x), 2]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
