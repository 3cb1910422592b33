package containerview

import "github.com/koto-lang/koto/value"

// rangeView walks the integers of a value.Range in the direction its
// Bounds imply, ascending or descending.
type rangeView struct {
	cur, end  int64
	ascending bool
	done      bool
}

func newRangeView(r value.Range) *rangeView {
	start, end, ascending := r.Bounds()
	return &rangeView{cur: start, end: end, ascending: ascending}
}

func (v *rangeView) Next() (value.Value, bool, error) {
	if v.done {
		return nil, true, nil
	}
	if v.ascending {
		if v.cur >= v.end {
			v.done = true
			return nil, true, nil
		}
		n := v.cur
		v.cur++
		return value.Number(n), false, nil
	}
	if v.cur <= v.end {
		v.done = true
		return nil, true, nil
	}
	v.cur--
	return value.Number(v.cur), false, nil
}

func (v *rangeView) Clone() View {
	cp := *v
	return &cp
}
