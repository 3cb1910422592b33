package containerview

import "github.com/koto-lang/koto/value"

// vecView walks a fixed-length Num2/Num4 in positional order. The backing
// slice is a value copy taken at view creation, matching Num2/Num4's
// value semantics (no ConcurrentModification is possible).
type vecView struct {
	items []float64
	index int
}

func newVecView(items []float64) *vecView {
	cp := make([]float64, len(items))
	copy(cp, items)
	return &vecView{items: cp}
}

func (v *vecView) Next() (value.Value, bool, error) {
	if v.index >= len(v.items) {
		return nil, true, nil
	}
	item := value.Number(v.items[v.index])
	v.index++
	return item, false, nil
}

func (v *vecView) Clone() View {
	return &vecView{items: v.items, index: v.index}
}
