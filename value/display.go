package value

import "strings"

// Display renders v as a human-readable string, guarding against cycles
// the same way Equal does: a List, Map, or Object that (directly or
// indirectly) contains itself renders a placeholder for the repeated
// reference instead of recursing forever. List.String, Map.String,
// Tuple.String, and Object.String all delegate here so that every path
// to a deep display goes through the same cycle guard.
func Display(v Value) string {
	return display(v, newVisited())
}

func display(v Value, seen *visited) string {
	switch x := v.(type) {
	case *List:
		if !seen.enter(x.ID()) {
			return "[...]"
		}
		items := x.Snapshot()
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = display(item, seen)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Map:
		if !seen.enter(x.ID()) {
			return "{...}"
		}
		entries := x.Entries()
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = display(e[0], seen) + ": " + display(e[1], seen)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case Tuple:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = display(item, seen)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *Object:
		if f := x.Overload(OverloadDisplay); f != nil {
			if s, err := f.Call(nil); err == nil {
				return s.String()
			}
		}
		if !seen.enter(x.ID()) {
			return "{...}"
		}
		return display(x.Fields(), seen)
	default:
		return v.String()
	}
}
