package iterator

import (
	"strings"

	"github.com/koto-lang/koto/value"
)

// Terminals are eager: each drains its upstream, propagating the first
// error encountered.

// ToList materializes all remaining elements into a *value.List, in
// order of production.
func (it *Iterator) ToList() (*value.List, error) {
	items, err := it.drain()
	if err != nil {
		return nil, err
	}
	return value.NewList(items...), nil
}

// ToTuple materializes all remaining elements into a value.Tuple.
func (it *Iterator) ToTuple() (value.Tuple, error) {
	items, err := it.drain()
	if err != nil {
		return nil, err
	}
	return value.NewTuple(items...), nil
}

func (it *Iterator) drain() ([]value.Value, error) {
	var items []value.Value
	for {
		v, done, err := it.advance()
		if err != nil {
			return nil, err
		}
		if done {
			return items, nil
		}
		items = append(items, v)
	}
}

// ToMap materializes remaining elements into a *value.Map. A 2-tuple
// element is treated as a (key, value) pair; any other element becomes a
// key mapped to Empty.
func (it *Iterator) ToMap() (*value.Map, error) {
	m := value.NewMap()
	for {
		v, done, err := it.advance()
		if err != nil {
			return nil, err
		}
		if done {
			return m, nil
		}
		if pair, ok := v.(value.Tuple); ok && len(pair) == 2 {
			if err := m.Set(pair[0], pair[1]); err != nil {
				return nil, err
			}
			continue
		}
		if err := m.Set(v, value.EmptyValue); err != nil {
			return nil, err
		}
	}
}

// ToString concatenates the display form of each remaining element, with
// no separator.
func (it *Iterator) ToString() (value.String, error) {
	var b strings.Builder
	for {
		v, done, err := it.advance()
		if err != nil {
			return "", err
		}
		if done {
			return value.String(b.String()), nil
		}
		b.WriteString(v.String())
	}
}

func truthy(v value.Value) (bool, error) {
	b, ok := v.(value.Bool)
	if !ok {
		return false, value.NewError(value.TypeError, "predicate must return Bool, got %s", v.Kind())
	}
	return bool(b), nil
}

// All reports whether pred returns true for every remaining element,
// short-circuiting on the first false.
func (it *Iterator) All(pred value.Callable) (bool, error) {
	for {
		v, done, err := it.advance()
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
		r, err := pred.Call([]value.Value{v})
		if err != nil {
			return false, err
		}
		ok, err := truthy(r)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
}

// Any reports whether pred returns true for some remaining element,
// short-circuiting on the first true.
func (it *Iterator) Any(pred value.Callable) (bool, error) {
	for {
		v, done, err := it.advance()
		if err != nil {
			return false, err
		}
		if done {
			return false, nil
		}
		r, err := pred.Call([]value.Value{v})
		if err != nil {
			return false, err
		}
		ok, err := truthy(r)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
}

// Count returns the number of remaining elements.
func (it *Iterator) Count() (int, error) {
	n := 0
	for {
		_, done, err := it.advance()
		if err != nil {
			return 0, err
		}
		if done {
			return n, nil
		}
		n++
	}
}

// Consume drains the iterator for its side effects and returns it.
func (it *Iterator) Consume() (*Iterator, error) {
	for {
		_, done, err := it.advance()
		if err != nil {
			return it, err
		}
		if done {
			return it, nil
		}
	}
}

// Fold performs a left fold with signature f(acc, x) -> acc.
func (it *Iterator) Fold(init value.Value, f value.Callable) (value.Value, error) {
	acc := init
	for {
		v, done, err := it.advance()
		if err != nil {
			return nil, err
		}
		if done {
			return acc, nil
		}
		acc, err = f.Call([]value.Value{acc, v})
		if err != nil {
			return nil, err
		}
	}
}

// Last returns the final remaining element, or Empty if there are none.
func (it *Iterator) Last() (value.Value, error) {
	last := value.Value(value.EmptyValue)
	for {
		v, done, err := it.advance()
		if err != nil {
			return nil, err
		}
		if done {
			return last, nil
		}
		last = v
	}
}

// Position returns the 0-based index of the first element for which pred
// returns true, or Empty if none match.
func (it *Iterator) Position(pred value.Callable) (value.Value, error) {
	idx := int64(0)
	for {
		v, done, err := it.advance()
		if err != nil {
			return nil, err
		}
		if done {
			return value.EmptyValue, nil
		}
		r, err := pred.Call([]value.Value{v})
		if err != nil {
			return nil, err
		}
		ok, err := truthy(r)
		if err != nil {
			return nil, err
		}
		if ok {
			return value.Number(idx), nil
		}
		idx++
	}
}

func (it *Iterator) compareKey(a, b value.Value, key value.Callable) (int, error) {
	ka, kb := a, b
	if key != nil {
		var err error
		ka, err = key.Call([]value.Value{a})
		if err != nil {
			return 0, err
		}
		kb, err = key.Call([]value.Value{b})
		if err != nil {
			return 0, err
		}
	}
	return value.Compare(ka, kb)
}

// Min returns the element with the smallest comparison value, using key
// (if non-nil) to map each element before comparing; ties keep the
// first. Returns Empty if there are no elements.
func (it *Iterator) Min(key value.Callable) (value.Value, error) {
	best, ok, err := it.reduceExtreme(key, -1)
	if err != nil {
		return nil, err
	}
	if !ok {
		return value.EmptyValue, nil
	}
	return best, nil
}

// Max returns the element with the largest comparison value; ties keep
// the first.
func (it *Iterator) Max(key value.Callable) (value.Value, error) {
	best, ok, err := it.reduceExtreme(key, 1)
	if err != nil {
		return nil, err
	}
	if !ok {
		return value.EmptyValue, nil
	}
	return best, nil
}

// want is -1 to keep the running element when it compares less than the
// challenger (i.e. search for the minimum), or 1 to search for the
// maximum.
func (it *Iterator) reduceExtreme(key value.Callable, want int) (value.Value, bool, error) {
	var best value.Value
	have := false
	for {
		v, done, err := it.advance()
		if err != nil {
			return nil, false, err
		}
		if done {
			return best, have, nil
		}
		if !have {
			best, have = v, true
			continue
		}
		cmp, err := it.compareKey(v, best, key)
		if err != nil {
			return nil, false, err
		}
		if cmp == want {
			best = v
		}
	}
}

// MinMax returns the (min, max) pair in a single pass.
func (it *Iterator) MinMax(key value.Callable) (value.Value, value.Value, error) {
	var min, max value.Value
	have := false
	for {
		v, done, err := it.advance()
		if err != nil {
			return nil, nil, err
		}
		if done {
			if !have {
				return value.EmptyValue, value.EmptyValue, nil
			}
			return min, max, nil
		}
		if !have {
			min, max, have = v, v, true
			continue
		}
		if cmp, err := it.compareKey(v, min, key); err != nil {
			return nil, nil, err
		} else if cmp < 0 {
			min = v
		}
		if cmp, err := it.compareKey(v, max, key); err != nil {
			return nil, nil, err
		} else if cmp > 0 {
			max = v
		}
	}
}

// Sum reduces remaining elements with +, seeded and type-witnessed by
// init.
func (it *Iterator) Sum(init value.Value) (value.Value, error) {
	return it.reduceArith(init, value.Add)
}

// Product reduces remaining elements with *, seeded and type-witnessed by
// init.
func (it *Iterator) Product(init value.Value) (value.Value, error) {
	return it.reduceArith(init, value.Mul)
}

func (it *Iterator) reduceArith(init value.Value, op func(a, b value.Value) (value.Value, error)) (value.Value, error) {
	acc := init
	for {
		v, done, err := it.advance()
		if err != nil {
			return nil, err
		}
		if done {
			return acc, nil
		}
		acc, err = op(acc, v)
		if err != nil {
			return nil, err
		}
	}
}
