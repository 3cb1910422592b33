package containerview

import "github.com/koto-lang/koto/value"

// tupleView walks an immutable value.Tuple; since tuples never mutate,
// there is no ConcurrentModification check to make.
type tupleView struct {
	items value.Tuple
	index int
}

func newTupleView(t value.Tuple) *tupleView {
	return &tupleView{items: t}
}

func (v *tupleView) Next() (value.Value, bool, error) {
	if v.index >= len(v.items) {
		return nil, true, nil
	}
	item := v.items[v.index]
	v.index++
	return item, false, nil
}

func (v *tupleView) Clone() View {
	return &tupleView{items: v.items, index: v.index}
}
