package containerview

import "github.com/koto-lang/koto/value"

// mapView walks a *value.Map's (key, value) pairs in insertion order,
// yielding each as a 2-tuple, with the same ConcurrentModification guard
// as listView.
type mapView struct {
	m       *value.Map
	version uint64
	index   int
}

func newMapView(m *value.Map) *mapView {
	return &mapView{m: m, version: m.Version()}
}

func (v *mapView) Next() (value.Value, bool, error) {
	if v.m.Version() != v.version {
		return nil, false, value.NewError(value.ConcurrentModification, "map modified during iteration")
	}
	if v.index >= v.m.Len() {
		return nil, true, nil
	}
	k, val, err := v.m.EntryAt(v.index)
	if err != nil {
		return nil, true, err
	}
	v.index++
	return value.NewTuple(k, val), false, nil
}

func (v *mapView) Clone() View {
	return &mapView{m: v.m, version: v.version, index: v.index}
}
