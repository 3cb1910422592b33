package containerview

import "github.com/koto-lang/koto/value"

// listView walks a *value.List in positional order, detecting structural
// mutation (append/resize) mid-iteration via the list's version counter.
// Grounded on the teacher's sequence walks (sequence.go), adding the
// ConcurrentModification guard the spec requires for mutable containers.
type listView struct {
	list    *value.List
	version uint64
	index   int
}

func newListView(l *value.List) *listView {
	return &listView{list: l, version: l.Version()}
}

func (v *listView) Next() (value.Value, bool, error) {
	if v.list.Version() != v.version {
		return nil, false, value.NewError(value.ConcurrentModification, "list modified during iteration")
	}
	if v.index >= v.list.Len() {
		return nil, true, nil
	}
	item, err := v.list.At(v.index)
	if err != nil {
		return nil, true, err
	}
	v.index++
	return item, false, nil
}

func (v *listView) Clone() View {
	return &listView{list: v.list, version: v.version, index: v.index}
}
