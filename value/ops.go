package value

import (
	"math"
	"strings"
)

// Equal reports whether a and b are equal under Koto's value semantics:
// scalars compare by value, List/Map/Tuple compare structurally (with a
// cycle guard for self-referential containers), Object compares by its
// @== overload if defined, else by identity, and Function, Generator, and
// Iterator compare by identity.
func Equal(a, b Value) (bool, error) {
	return equal(a, b, newVisited())
}

func equal(a, b Value, seen *visited) (bool, error) {
	if a.Kind() != b.Kind() {
		return false, nil
	}
	switch x := a.(type) {
	case Empty:
		return true, nil
	case Bool:
		return x == b.(Bool), nil
	case Number:
		return float64(x) == float64(b.(Number)), nil
	case Num2:
		return x == b.(Num2), nil
	case Num4:
		return x == b.(Num4), nil
	case String:
		return x == b.(String), nil
	case Range:
		return x == b.(Range), nil
	case Tuple:
		y := b.(Tuple)
		if len(x) != len(y) {
			return false, nil
		}
		for i := range x {
			ok, err := equal(x[i], y[i], seen)
			if err != nil || !ok {
				return ok, err
			}
		}
		return true, nil
	case *List:
		y := b.(*List)
		if x == y {
			return true, nil
		}
		if !seen.enter(x.ID()) {
			return true, nil
		}
		xs, ys := x.Snapshot(), y.Snapshot()
		if len(xs) != len(ys) {
			return false, nil
		}
		for i := range xs {
			ok, err := equal(xs[i], ys[i], seen)
			if err != nil || !ok {
				return ok, err
			}
		}
		return true, nil
	case *Map:
		y := b.(*Map)
		if x == y {
			return true, nil
		}
		if !seen.enter(x.ID()) {
			return true, nil
		}
		xe, ye := x.Entries(), y.Entries()
		if len(xe) != len(ye) {
			return false, nil
		}
		for i := range xe {
			ok, err := equal(xe[i], ye[i], seen)
			if err != nil || !ok {
				return ok, err
			}
		}
		return true, nil
	case *Object:
		y := b.(*Object)
		if f := x.Overload(OverloadEqual); f != nil {
			r, err := f.Call([]Value{y})
			if err != nil {
				return false, err
			}
			bv, ok := r.(Bool)
			return ok && bool(bv), nil
		}
		return x.ID() == y.ID(), nil
	case *Function:
		return x.ID() == b.(*Function).ID(), nil
	default:
		// Generator and Iterator live in other packages; they compare by
		// identity through their ID.
		if xi, ok := a.(identified); ok {
			if yi, ok := b.(identified); ok {
				return xi.ID() == yi.ID(), nil
			}
		}
		return false, NewError(TypeError, "%s does not support equality", a.Kind())
	}
}

// Compare orders a against b, returning -1, 0, or 1. Only Number and
// String support ordering directly; Object may supply @< and @> to
// define its own order. All other kinds return a TypeError.
func Compare(a, b Value) (int, error) {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		if !ok {
			return 0, NewError(TypeError, "cannot compare Number with %s", b.Kind())
		}
		switch {
		case float64(x) < float64(y):
			return -1, nil
		case float64(x) > float64(y):
			return 1, nil
		default:
			return 0, nil
		}
	case String:
		y, ok := b.(String)
		if !ok {
			return 0, NewError(TypeError, "cannot compare String with %s", b.Kind())
		}
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	case *Object:
		y, ok := b.(*Object)
		if !ok {
			return 0, NewError(TypeError, "cannot compare Object with %s", b.Kind())
		}
		lt := x.Overload(OverloadLess)
		gt := x.Overload(OverloadGreater)
		if lt == nil && gt == nil {
			return 0, NewError(TypeError, "%s defines neither @< nor @> and cannot be ordered", x.TypeName())
		}
		if lt != nil {
			r, err := lt.Call([]Value{y})
			if err != nil {
				return 0, err
			}
			if v, _ := r.(Bool); bool(v) {
				return -1, nil
			}
		}
		if gt != nil {
			r, err := gt.Call([]Value{y})
			if err != nil {
				return 0, err
			}
			if v, _ := r.(Bool); bool(v) {
				return 1, nil
			}
		}
		return 0, nil
	default:
		return 0, NewError(TypeError, "%s does not support ordering", a.Kind())
	}
}

type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
	opRem
)

func (op arithOp) overload() Overload {
	switch op {
	case opAdd:
		return OverloadAdd
	case opSub:
		return OverloadSub
	case opMul:
		return OverloadMul
	case opDiv:
		return OverloadDiv
	default:
		return OverloadRem
	}
}

func (op arithOp) symbol() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	default:
		return "%"
	}
}

func arith(op arithOp, a, b Value) (Value, error) {
	switch x := a.(type) {
	case Number:
		switch y := b.(type) {
		case Number:
			return numberArith(op, float64(x), float64(y))
		case Num2:
			// scalar broadcast: Number op Num2 applies the scalar on the
			// left of every component, so operand order is preserved for
			// non-commutative operators like '-' and '/'.
			out, err := broadcastVec(op, float64(x), y[:], true)
			if err != nil {
				return nil, err
			}
			return Num2{out[0], out[1]}, nil
		case Num4:
			out, err := broadcastVec(op, float64(x), y[:], true)
			if err != nil {
				return nil, err
			}
			return Num4{out[0], out[1], out[2], out[3]}, nil
		default:
			return nil, NewError(TypeError, "cannot apply %s to Number and %s", op.symbol(), b.Kind())
		}
	case Num2:
		switch y := b.(type) {
		case Num2:
			out, err := elementwiseVec(op, x[:], y[:])
			if err != nil {
				return nil, err
			}
			return Num2{out[0], out[1]}, nil
		case Number:
			out, err := broadcastVec(op, float64(y), x[:], false)
			if err != nil {
				return nil, err
			}
			return Num2{out[0], out[1]}, nil
		default:
			return nil, NewError(TypeError, "cannot apply %s to Num2 and %s", op.symbol(), b.Kind())
		}
	case Num4:
		switch y := b.(type) {
		case Num4:
			out, err := elementwiseVec(op, x[:], y[:])
			if err != nil {
				return nil, err
			}
			return Num4{out[0], out[1], out[2], out[3]}, nil
		case Number:
			out, err := broadcastVec(op, float64(y), x[:], false)
			if err != nil {
				return nil, err
			}
			return Num4{out[0], out[1], out[2], out[3]}, nil
		default:
			return nil, NewError(TypeError, "cannot apply %s to Num4 and %s", op.symbol(), b.Kind())
		}
	case String:
		if op == opAdd {
			y, ok := b.(String)
			if !ok {
				return nil, NewError(TypeError, "cannot add String and %s", b.Kind())
			}
			return x + y, nil
		}
	case *List:
		if op == opAdd {
			y, ok := b.(*List)
			if !ok {
				return nil, NewError(TypeError, "cannot add List and %s", b.Kind())
			}
			out := NewList(x.Snapshot()...)
			out.Append(y.Snapshot()...)
			return out, nil
		}
	case *Object:
		if f := x.Overload(op.overload()); f != nil {
			return f.Call([]Value{b})
		}
	}
	return nil, NewError(TypeError, "%s does not support %s", a.Kind(), op.symbol())
}

// elementwiseVec applies op to x and y component-wise; x and y must have
// the same length.
func elementwiseVec(op arithOp, x, y []float64) ([]float64, error) {
	out := make([]float64, len(x))
	for i := range x {
		v, err := numberArith(op, x[i], y[i])
		if err != nil {
			return nil, err
		}
		out[i] = float64(v.(Number))
	}
	return out, nil
}

// broadcastVec applies op between scalar and every component of vec.
// scalarFirst controls operand order (scalar op vec[i] vs vec[i] op
// scalar), which matters for non-commutative operators.
func broadcastVec(op arithOp, scalar float64, vec []float64, scalarFirst bool) ([]float64, error) {
	out := make([]float64, len(vec))
	for i, c := range vec {
		var v Value
		var err error
		if scalarFirst {
			v, err = numberArith(op, scalar, c)
		} else {
			v, err = numberArith(op, c, scalar)
		}
		if err != nil {
			return nil, err
		}
		out[i] = float64(v.(Number))
	}
	return out, nil
}

func numberArith(op arithOp, x, y float64) (Value, error) {
	switch op {
	case opAdd:
		return Number(x + y), nil
	case opSub:
		return Number(x - y), nil
	case opMul:
		return Number(x * y), nil
	case opDiv:
		if y == 0 {
			return nil, NewError(TypeError, "division by zero")
		}
		return Number(x / y), nil
	case opRem:
		if y == 0 {
			return nil, NewError(TypeError, "division by zero")
		}
		return Number(math.Mod(x, y)), nil
	default:
		return nil, NewError(TypeError, "unknown arithmetic operator")
	}
}

// Add implements the '+' operator across Number, Num2, Num4, String
// (concatenation), List (concatenation), and Object (via @+).
func Add(a, b Value) (Value, error) { return arith(opAdd, a, b) }

// Sub implements the '-' operator.
func Sub(a, b Value) (Value, error) { return arith(opSub, a, b) }

// Mul implements the '*' operator.
func Mul(a, b Value) (Value, error) { return arith(opMul, a, b) }

// Div implements the '/' operator.
func Div(a, b Value) (Value, error) { return arith(opDiv, a, b) }

// Rem implements the '%' operator.
func Rem(a, b Value) (Value, error) { return arith(opRem, a, b) }

// Index implements indexing (v[i]) for List, Tuple, String (by grapheme
// position), Num2, Num4, Map (by key), and Object (via @[]).
func Index(v, i Value) (Value, error) {
	switch x := v.(type) {
	case *List:
		n, ok := i.(Number)
		if !ok {
			return nil, NewError(TypeError, "list index must be a Number, got %s", i.Kind())
		}
		return x.At(int(n))
	case Tuple:
		n, ok := i.(Number)
		if !ok {
			return nil, NewError(TypeError, "tuple index must be a Number, got %s", i.Kind())
		}
		idx := int(n)
		if idx < 0 || idx >= len(x) {
			return nil, NewError(IndexError, "index %d out of range for tuple of size %d", idx, len(x))
		}
		return x[idx], nil
	case String:
		segs := graphemes(string(x))
		n, ok := i.(Number)
		if !ok {
			return nil, NewError(TypeError, "string index must be a Number, got %s", i.Kind())
		}
		idx := int(n)
		if idx < 0 || idx >= len(segs) {
			return nil, NewError(IndexError, "index %d out of range for string of %d graphemes", idx, len(segs))
		}
		return String(segs[idx]), nil
	case Num2:
		c, err := vecAt(x[:], i)
		if err != nil {
			return nil, err
		}
		return Number(c), nil
	case Num4:
		c, err := vecAt(x[:], i)
		if err != nil {
			return nil, err
		}
		return Number(c), nil
	case *Map:
		return x.Get(i)
	case *Object:
		if f := x.Overload(OverloadIndex); f != nil {
			return f.Call([]Value{i})
		}
		return nil, NewError(TypeError, "object has no @[] overload")
	default:
		return nil, NewError(TypeError, "%s does not support indexing", v.Kind())
	}
}

// vecAt returns the component of vec named by i, or IndexError if i is
// out of range.
func vecAt(vec []float64, i Value) (float64, error) {
	n, ok := i.(Number)
	if !ok {
		return 0, NewError(TypeError, "vector index must be a Number, got %s", i.Kind())
	}
	idx := int(n)
	if idx < 0 || idx >= len(vec) {
		return 0, NewError(IndexError, "index %d out of range for vector of size %d", idx, len(vec))
	}
	return vec[idx], nil
}

// Slice returns the half-open [start, end) sub-range of v as a new value:
// List and Tuple copy-range to a value of the same kind; String copy-range
// slices by grapheme position; Num2 and Num4 read back as a Tuple of the
// selected components, since no fixed-size vector kind exists for an
// arbitrary slice length (assigning into a Num2/Num4 range instead
// broadcasts or bulk-stores, see SetSlice).
func Slice(v Value, start, end int) (Value, error) {
	switch x := v.(type) {
	case *List:
		items := x.Snapshot()
		s, e, err := clampSlice(len(items), start, end)
		if err != nil {
			return nil, err
		}
		return NewList(items[s:e]...), nil
	case Tuple:
		s, e, err := clampSlice(len(x), start, end)
		if err != nil {
			return nil, err
		}
		return NewTuple(x[s:e]...), nil
	case String:
		segs := graphemes(string(x))
		s, e, err := clampSlice(len(segs), start, end)
		if err != nil {
			return nil, err
		}
		return String(strings.Join(segs[s:e], "")), nil
	case Num2:
		return sliceVecTuple(x[:], start, end)
	case Num4:
		return sliceVecTuple(x[:], start, end)
	default:
		return nil, NewError(TypeError, "%s does not support slicing", v.Kind())
	}
}

func sliceVecTuple(vec []float64, start, end int) (Value, error) {
	s, e, err := clampSlice(len(vec), start, end)
	if err != nil {
		return nil, err
	}
	out := make(Tuple, e-s)
	for i, c := range vec[s:e] {
		out[i] = Number(c)
	}
	return out, nil
}

func clampSlice(n, start, end int) (int, int, error) {
	if start < 0 || end < start || end > n {
		return 0, 0, NewError(IndexError, "slice [%d:%d] out of range for size %d", start, end, n)
	}
	return start, end, nil
}

// SetSlice implements slice assignment (v[a..b] = rhs): for Num2 and Num4
// (value kinds) it assign-broadcasts, storing a single Number into every
// selected component or copying a same-length Num2/Num4 of replacements
// component-by-component, and returns the updated vector. For List (a
// reference kind) it copy-range stores rhs — a List or Tuple whose length
// must match the selected range — into the list in place and returns the
// same list. Tuple and String are immutable and do not support slice
// assignment.
func SetSlice(v Value, start, end int, rhs Value) (Value, error) {
	switch x := v.(type) {
	case Num2:
		out, err := setVecSlice(x[:], start, end, rhs)
		if err != nil {
			return nil, err
		}
		return Num2{out[0], out[1]}, nil
	case Num4:
		out, err := setVecSlice(x[:], start, end, rhs)
		if err != nil {
			return nil, err
		}
		return Num4{out[0], out[1], out[2], out[3]}, nil
	case *List:
		items, err := replacementItems(rhs)
		if err != nil {
			return nil, err
		}
		if err := x.SetRange(start, end, items); err != nil {
			return nil, err
		}
		return x, nil
	default:
		return nil, NewError(TypeError, "%s does not support slice assignment", v.Kind())
	}
}

func setVecSlice(vec []float64, start, end int, rhs Value) ([]float64, error) {
	s, e, err := clampSlice(len(vec), start, end)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vec))
	copy(out, vec)
	switch r := rhs.(type) {
	case Number:
		for i := s; i < e; i++ {
			out[i] = float64(r)
		}
	case Num2:
		if e-s != len(r) {
			return nil, NewError(IndexError, "slice [%d:%d] length %d does not match replacement length %d", start, end, e-s, len(r))
		}
		copy(out[s:e], r[:])
	case Num4:
		if e-s != len(r) {
			return nil, NewError(IndexError, "slice [%d:%d] length %d does not match replacement length %d", start, end, e-s, len(r))
		}
		copy(out[s:e], r[:])
	default:
		return nil, NewError(TypeError, "cannot assign %s into a Num2/Num4 slice", rhs.Kind())
	}
	return out, nil
}

// replacementItems extracts the replacement elements for a List slice
// assignment: rhs must be a sequence, since List slice assignment is
// copy-range rather than broadcast.
func replacementItems(rhs Value) ([]Value, error) {
	switch r := rhs.(type) {
	case *List:
		return r.Snapshot(), nil
	case Tuple:
		return []Value(r), nil
	default:
		return nil, NewError(TypeError, "slice assignment into a List requires a List or Tuple of replacement values, got %s", rhs.Kind())
	}
}
