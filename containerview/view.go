package containerview

import "github.com/koto-lang/koto/value"

// View is the opaque cursor a container exposes via make_view(): it
// produces values in canonical order and is one-shot (advancing consumes
// it) but restartable (MakeView on the same container always starts
// fresh). Grounded on the teacher's Sequence iteration helpers
// (sequence.go's ForEach-style walks), generalized into an explicit
// cursor object so the iterator package can hold one mid-drain.
type View interface {
	// Next returns the view's next value. done is true at end-of-sequence,
	// in which case v is nil. err is non-nil only when a mutable
	// container backing this view was structurally modified since the
	// view was made (ConcurrentModification).
	Next() (v value.Value, done bool, err error)

	// Clone returns an independent view positioned at this view's current
	// cursor; advancing the clone does not affect the original.
	Clone() View
}

// MakeView returns the canonical-order view for v, or a TypeError if v's
// kind has no container view (Empty, Bool, Number, Function, Generator,
// Iterator, Object). An Object's @iterator overload is not consulted here.
func MakeView(v value.Value) (View, error) {
	switch x := v.(type) {
	case *value.List:
		return newListView(x), nil
	case value.Tuple:
		return newTupleView(x), nil
	case *value.Map:
		return newMapView(x), nil
	case value.String:
		return newStringView(x), nil
	case value.Range:
		return newRangeView(x), nil
	case value.Num2:
		return newVecView(x[:]), nil
	case value.Num4:
		return newVecView(x[:]), nil
	default:
		return nil, value.NewError(value.TypeError, "%s has no container view", v.Kind())
	}
}
