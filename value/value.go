package value

import "sync/atomic"

// Kind is a stable type tag queryable at runtime, per the data model in
// the language core spec: every Value has exactly one Kind for its
// lifetime.
type Kind int

// The closed set of runtime value kinds.
const (
	KindEmpty Kind = iota
	KindBool
	KindNumber
	KindNum2
	KindNum4
	KindString
	KindRange
	KindList
	KindTuple
	KindMap
	KindFunction
	KindGenerator
	KindIterator
	KindObject
)

var kindNames = [...]string{
	KindEmpty:     "Empty",
	KindBool:      "Bool",
	KindNumber:    "Number",
	KindNum2:      "Num2",
	KindNum4:      "Num4",
	KindString:    "String",
	KindRange:     "Range",
	KindList:      "List",
	KindTuple:     "Tuple",
	KindMap:       "Map",
	KindFunction:  "Function",
	KindGenerator: "Generator",
	KindIterator:  "Iterator",
	KindObject:    "Object",
}

func (k Kind) String() string {
	if k < KindEmpty || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Value is the interface satisfied by every runtime value. Concrete kinds
// live in this package except for Generator and Iterator, which are
// produced by the generator and iterator packages respectively but still
// satisfy Value so that they can flow through the same arithmetic,
// equality, and container APIs as everything else.
type Value interface {
	// Kind reports the value's runtime type tag.
	Kind() Kind
	// String returns a display representation, used by to_string and by
	// debugging output. It must not panic on cyclic structures: List,
	// Map, Tuple, and Object route their String through Display
	// (display.go), which guards against revisiting a node.
	String() string
}

// Callable is the function-call interface that a compiler or VM (out of
// scope here) calls into, and which adaptors and terminals call user
// predicates, mappers, and folds through. It covers both native Go
// functions and user-defined Koto functions alike: the runtime core does
// not distinguish between them.
type Callable interface {
	Call(args []Value) (Value, error)
}

// CallableFunc adapts a plain Go function to Callable, mirroring the
// teacher's CFunction wrapper (internal/vm.go's NewCFunction) but without
// the message/locals machinery that belongs to the absent AST evaluator.
type CallableFunc func(args []Value) (Value, error)

// Call invokes the wrapped function.
func (f CallableFunc) Call(args []Value) (Value, error) { return f(args) }

// nextID is the global counter backing NextID, grounded on the teacher's
// objcounter/nextObject in internal/object.go.
var nextID uint64

// NextID returns a fresh process-unique identifier, used by reference
// kinds (List, Map, Function, Generator, Iterator, Object) for identity
// equality and for cycle-guard visited sets.
func NextID() uint64 {
	return atomic.AddUint64(&nextID, 1)
}
