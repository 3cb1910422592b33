package value

import "github.com/zephyrtronium/contains"

// identified is implemented by every reference-kind Value (List, Map,
// Object) so that Equal and String can guard against cycles by unique ID.
type identified interface {
	ID() uint64
}

// visited is a cycle guard for graph-shaped values, built the same way as
// the teacher's IsKindOf guard (internal/object.go): a set of unique IDs
// seen so far, so that structural recursion over a value graph never
// revisits a node it has already entered.
type visited struct {
	set contains.Set
}

func newVisited() *visited {
	return &visited{set: contains.Set{}}
}

// enter records id as visited and reports whether it was new. A false
// result means the caller has re-entered a cycle and must stop recursing.
func (v *visited) enter(id uint64) bool {
	return v.set.Add(uintptr(id))
}
