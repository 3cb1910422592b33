package iterator

import (
	"github.com/koto-lang/koto/containerview"
	"github.com/koto-lang/koto/generator"
	"github.com/koto-lang/koto/value"
)

// Promote returns v as an Iterator: a no-op if v is already one, a fresh
// wrapper over v's generator frame or container view otherwise, or the
// result of dispatching v's @iterator overload if v is an Object that
// defines one.
func Promote(v value.Value) (*Iterator, error) {
	switch x := v.(type) {
	case *Iterator:
		return x, nil
	case *generator.Generator:
		return NewFromGenerator(x), nil
	case *value.Object:
		f := x.Overload(value.OverloadIter)
		if f == nil {
			return nil, value.NewError(value.TypeError, "object has no @iterator overload")
		}
		r, err := f.Call(nil)
		if err != nil {
			return nil, err
		}
		it, ok := r.(*Iterator)
		if !ok {
			return nil, value.NewError(value.TypeError, "@iterator must return an Iterator, got %s", r.Kind())
		}
		return it, nil
	default:
		view, err := containerview.MakeView(v)
		if err != nil {
			return nil, err
		}
		return NewFromView(view), nil
	}
}
