package module_test

import (
	"testing"

	"github.com/koto-lang/koto/iterator"
	"github.com/koto-lang/koto/module"
	"github.com/koto-lang/koto/value"
)

func mustIter(t *testing.T, v value.Value) *iterator.Iterator {
	t.Helper()
	it, err := iterator.Promote(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return it
}

// TestRegistryDispatchBuiltinFirst tests that a registered extension
// cannot shadow a built-in method name.
func TestRegistryDispatchBuiltinFirst(t *testing.T) {
	reg := module.NewIteratorRegistry()
	called := false
	reg.Register("count", value.NewFunction("count", value.CallableFunc(func(args []value.Value) (value.Value, error) {
		called = true
		return value.Number(-1), nil
	})))

	it := mustIter(t, value.NewTuple(value.Number(1), value.Number(2), value.Number(3)))
	got, err := reg.Dispatch(it, "count", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(value.Number) != 3 {
		t.Errorf("count = %v, want 3 (built-in, not the registered override)", got)
	}
	if called {
		t.Error("registered extension was invoked despite a built-in of the same name existing")
	}
}

// TestRegistryDispatchUnknownMethod tests that Dispatch reports an error
// for a name that is neither built-in nor registered.
func TestRegistryDispatchUnknownMethod(t *testing.T) {
	reg := module.NewIteratorRegistry()
	it := mustIter(t, value.NewTuple())
	_, err := reg.Dispatch(it, "frobnicate", nil)
	if _, ok := value.AsError(err, value.TypeError); !ok {
		t.Errorf("got %v, want a TypeError", err)
	}
}

// everyOther registers a custom adaptor equivalent to the spec's
// "iterator.every_other = |it| …" extension example: it keeps every
// other element of its upstream, starting with the first.
func everyOther(reg *module.IteratorRegistry) {
	reg.Register("every_other", value.NewFunction("every_other", value.CallableFunc(func(args []value.Value) (value.Value, error) {
		it, ok := args[0].(*iterator.Iterator)
		if !ok {
			return nil, value.NewError(value.TypeError, "every_other expects an Iterator")
		}
		n := 0
		pred := value.CallableFunc(func(_ []value.Value) (value.Value, error) {
			keep := n%2 == 0
			n++
			return value.Bool(keep), nil
		})
		return it.Keep(pred), nil
	})))
}

// TestRegistryCustomAdaptor tests the spec's custom-adaptor scenario: a
// registered extension is reachable both as a method call through
// Dispatch and as the equivalent free-function call.
func TestRegistryCustomAdaptor(t *testing.T) {
	reg := module.NewIteratorRegistry()
	everyOther(reg)

	makeIter := func() *iterator.Iterator {
		return mustIter(t, value.NewTuple(
			value.Number(10), value.Number(11), value.Number(12),
			value.Number(13), value.Number(14), value.Number(15),
		))
	}

	viaDispatch, err := reg.Dispatch(makeIter(), "every_other", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := viaDispatch.(*iterator.Iterator).ToTuple()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fn := reg.Lookup("every_other")
	if fn == nil {
		t.Fatal("every_other was not registered")
	}
	viaCall, err := fn.Call([]value.Value{makeIter()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantTup, err := viaCall.(*iterator.Iterator).ToTuple()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"10", "12", "14"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, item := range got {
		if item.String() != want[i] {
			t.Errorf("item %d = %q, want %q", i, item.String(), want[i])
		}
		if wantTup[i].String() != want[i] {
			t.Errorf("free-function path item %d = %q, want %q", i, wantTup[i].String(), want[i])
		}
	}
}

// TestRegistryLookupMissing tests that Lookup returns nil for a name
// that was never registered.
func TestRegistryLookupMissing(t *testing.T) {
	reg := module.NewIteratorRegistry()
	if fn := reg.Lookup("nope"); fn != nil {
		t.Errorf("got %v, want nil", fn)
	}
}
