package module

import (
	"sync"

	"github.com/koto-lang/koto/iterator"
	"github.com/koto-lang/koto/value"
)

// IteratorRegistry is the runtime-wide mutable "iterator" namespace:
// assigning iterator.foo = f registers f so that any Iterator it may
// invoke it.foo(args…). Grounded on the teacher's addon proto table
// (addonmaps.protos in addon.go), trimmed from dynamic-plugin loading
// down to a plain registered-function table, since the spec's extension
// mechanism is just a name-to-Function map, not a plugin system.
type IteratorRegistry struct {
	mu  sync.Mutex
	fns map[string]*value.Function
}

// NewIteratorRegistry creates an empty registry.
func NewIteratorRegistry() *IteratorRegistry {
	return &IteratorRegistry{fns: map[string]*value.Function{}}
}

// Register installs fn under name, so that any Iterator's it.name(args)
// call dispatches here as fn(it, args…). The extension is visible to all
// subsequent iterator values for the life of the process, since the
// registry is process-wide mutable state.
func (reg *IteratorRegistry) Register(name string, fn *value.Function) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.fns[name] = fn
}

// Lookup returns the registered function for name, or nil if none is
// registered.
func (reg *IteratorRegistry) Lookup(name string) *value.Function {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.fns[name]
}

// Dispatch implements "when a method call it.name(args) is made and name
// is not built-in, the registry is consulted; the function is invoked as
// f(it, args…)." It tries the built-in adaptors and terminals first and
// only falls back to a registered extension when name isn't one of
// them, so iterator.foo = f cannot shadow a built-in method.
func (reg *IteratorRegistry) Dispatch(it *iterator.Iterator, name string, args []value.Value) (value.Value, error) {
	v, err := it.Invoke(name, args)
	if err != iterator.ErrNotBuiltin {
		return v, err
	}
	fn := reg.Lookup(name)
	if fn == nil {
		return nil, value.NewError(value.TypeError, "iterator has no method or registered extension %q", name)
	}
	call := append([]value.Value{it}, args...)
	return fn.Call(call)
}
