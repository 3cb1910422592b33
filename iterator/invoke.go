package iterator

import (
	"errors"

	"github.com/koto-lang/koto/value"
)

// ErrNotBuiltin is returned by Invoke when name does not name one of the
// built-in adaptors or terminals. Callers (typically the module
// package's IteratorRegistry.Dispatch) should fall back to the
// extension registry on this error.
var ErrNotBuiltin = errors.New("not a built-in iterator method")

func arg(args []value.Value, i int) value.Value {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func callableArg(args []value.Value, i int) (value.Callable, error) {
	v := arg(args, i)
	c, ok := v.(value.Callable)
	if !ok {
		return nil, value.NewError(value.ArityError, "expected a callable argument at position %d", i)
	}
	return c, nil
}

func intArg(args []value.Value, i int) (int, error) {
	v := arg(args, i)
	n, ok := v.(value.Number)
	if !ok {
		return 0, value.NewError(value.ArityError, "expected a Number argument at position %d", i)
	}
	return int(n), nil
}

// Invoke dispatches name(args…) against it.name(args) for every built-in
// adaptor and terminal named in the language core's iterator contract.
// It returns ErrNotBuiltin for any other name, leaving extension
// dispatch to the caller.
func (it *Iterator) Invoke(name string, args []value.Value) (value.Value, error) {
	switch name {
	case "next":
		return it.Next()
	case "copy":
		return it.Copy()
	case "each":
		f, err := callableArg(args, 0)
		if err != nil {
			return nil, err
		}
		return it.Each(f), nil
	case "keep":
		f, err := callableArg(args, 0)
		if err != nil {
			return nil, err
		}
		return it.Keep(f), nil
	case "chain":
		other, err := Promote(arg(args, 0))
		if err != nil {
			return nil, err
		}
		return it.Chain(other), nil
	case "cycle":
		return it.Cycle(), nil
	case "enumerate":
		return it.Enumerate(), nil
	case "intersperse":
		if f, ok := arg(args, 0).(value.Callable); ok {
			return it.IntersperseWith(f), nil
		}
		return it.Intersperse(arg(args, 0)), nil
	case "skip":
		n, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		return it.Skip(n), nil
	case "take":
		n, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		return it.Take(n), nil
	case "zip":
		other, err := Promote(arg(args, 0))
		if err != nil {
			return nil, err
		}
		return it.Zip(other), nil
	case "windows":
		n, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		return it.Windows(n), nil
	case "chunks":
		n, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		return it.Chunks(n), nil
	case "to_list":
		return it.ToList()
	case "to_tuple":
		return it.ToTuple()
	case "to_map":
		return it.ToMap()
	case "to_string":
		return it.ToString()
	case "all":
		f, err := callableArg(args, 0)
		if err != nil {
			return nil, err
		}
		ok, err := it.All(f)
		return value.Bool(ok), err
	case "any":
		f, err := callableArg(args, 0)
		if err != nil {
			return nil, err
		}
		ok, err := it.Any(f)
		return value.Bool(ok), err
	case "count":
		n, err := it.Count()
		return value.Number(n), err
	case "consume":
		return it.Consume()
	case "fold":
		f, err := callableArg(args, 1)
		if err != nil {
			return nil, err
		}
		return it.Fold(arg(args, 0), f)
	case "last":
		return it.Last()
	case "position":
		f, err := callableArg(args, 0)
		if err != nil {
			return nil, err
		}
		return it.Position(f)
	case "min":
		key, _ := callableArg(args, 0)
		return it.Min(key)
	case "max":
		key, _ := callableArg(args, 0)
		return it.Max(key)
	case "min_max":
		key, _ := callableArg(args, 0)
		lo, hi, err := it.MinMax(key)
		if err != nil {
			return nil, err
		}
		return value.NewTuple(lo, hi), nil
	case "sum":
		init := arg(args, 0)
		if init == nil {
			init = value.Number(0)
		}
		return it.Sum(init)
	case "product":
		init := arg(args, 0)
		if init == nil {
			init = value.Number(1)
		}
		return it.Product(init)
	default:
		return nil, ErrNotBuiltin
	}
}
