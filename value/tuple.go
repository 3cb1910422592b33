package value

// Tuple is an ordered, immutable sequence of Value. Assignment copies the
// handle; since the backing slice is never mutated after construction,
// that copy is cheap and safe to share.
type Tuple []Value

// NewTuple creates a Tuple from the given items, copying them so that the
// caller's backing slice can't be mutated out from under the tuple.
func NewTuple(items ...Value) Tuple {
	cp := make(Tuple, len(items))
	copy(cp, items)
	return cp
}

func (Tuple) Kind() Kind { return KindTuple }

// String renders the tuple via Display. A Tuple has no identity of its
// own to cycle-guard, but it may hold a List or Map that cycles back to
// it, so deep display still needs the shared visited-set.
func (t Tuple) String() string {
	return Display(t)
}
