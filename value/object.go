package value

import "sync"

// Overload names one of the closed set of operator methods an Object may
// define. Grounded on the teacher's slot-based operator dispatch
// (internal/object.go's forward/message lookup), narrowed to the fixed
// set the spec recognizes instead of arbitrary message names.
type Overload string

const (
	OverloadLess    Overload = "@<"
	OverloadGreater Overload = "@>"
	OverloadEqual   Overload = "@=="
	OverloadAdd     Overload = "@+"
	OverloadSub     Overload = "@-"
	OverloadMul     Overload = "@*"
	OverloadDiv     Overload = "@/"
	OverloadRem     Overload = "@%"
	OverloadIndex   Overload = "@[]"
	OverloadCall    Overload = "@()"
	OverloadIter    Overload = "@iterator"
	OverloadDisplay Overload = "@display"
	OverloadType    Overload = "@type"
)

// Object is a user-defined record: an ordered set of named fields plus an
// overload table of operator implementations drawn from the closed set
// above. Grounded on the teacher's Object (internal/object.go), with the
// prototype/slot-inheritance machinery dropped since the spec's Object
// has no prototype chain.
type Object struct {
	id uint64

	mu        sync.Mutex
	fields    *Map
	overloads map[Overload]*Function
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{id: NextID(), fields: NewMap(), overloads: map[Overload]*Function{}}
}

func (*Object) Kind() Kind { return KindObject }

// String renders the object via Display: its @display overload if it
// defines one, else its fields map, guarded against an object whose
// fields cycle back to itself.
func (o *Object) String() string {
	return Display(o)
}

// ID returns the object's unique identity, used for equality and as its
// Map hash key.
func (o *Object) ID() uint64 { return o.id }

// Fields returns the object's backing field map.
func (o *Object) Fields() *Map { return o.fields }

// SetOverload installs fn as the implementation of the given operator.
func (o *Object) SetOverload(name Overload, fn *Function) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.overloads[name] = fn
}

// Overload returns the object's implementation of the given operator, or
// nil if it does not define one.
func (o *Object) Overload(name Overload) *Function {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.overloads[name]
}

// TypeName returns the object's @type overload result if defined, else
// the generic "Object" type name.
func (o *Object) TypeName() string {
	if f := o.Overload(OverloadType); f != nil {
		if s, err := f.Call(nil); err == nil {
			return s.String()
		}
	}
	return "Object"
}
