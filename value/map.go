package value

import (
	"strings"
	"sync"
)

// Map is an ordered mapping from String (or any other hashable Value) to
// Value, preserving insertion order, shared by reference like List.
// Grounded on the teacher's Map (map.go) generalized from string-only
// slot names to arbitrary hashable keys per the spec's Map kind.
type Map struct {
	id uint64

	mu      sync.Mutex
	keys    []Value
	vals    map[string]Value
	index   map[string]int // hash key -> position in keys
	version uint64
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{
		id:    NextID(),
		vals:  map[string]Value{},
		index: map[string]int{},
	}
}

func (*Map) Kind() Kind { return KindMap }

// String renders the map via Display, guarding the same way List does
// against a map that contains itself as a value.
func (m *Map) String() string {
	return Display(m)
}

// ID returns the map's unique identity.
func (m *Map) ID() uint64 { return m.id }

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}

// Version returns the structural-mutation counter, used for
// ConcurrentModification detection during iteration.
func (m *Map) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// Get looks up key, returning KeyError if absent.
func (m *Map) Get(key Value) (Value, error) {
	hk, err := HashKey(key)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vals[hk]
	if !ok {
		return nil, NewError(KeyError, "key %s not found", key.String())
	}
	return v, nil
}

// Set inserts or updates key -> value, appending to the insertion order if
// key is new.
func (m *Map) Set(key, val Value) error {
	hk, err := HashKey(key)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.index[hk]; !ok {
		m.index[hk] = len(m.keys)
		m.keys = append(m.keys, key)
		m.version++
	}
	m.vals[hk] = val
	return nil
}

// EntryAt returns the (key, value) pair at position i in insertion order.
func (m *Map) EntryAt(i int) (key, val Value, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i < 0 || i >= len(m.keys) {
		return nil, nil, NewError(IndexError, "index %d out of range for map of size %d", i, len(m.keys))
	}
	k := m.keys[i]
	hk, _ := HashKey(k)
	return k, m.vals[hk], nil
}

// Entries returns a snapshot of the map's (key, value) pairs in insertion
// order.
func (m *Map) Entries() []Tuple {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Tuple, len(m.keys))
	for i, k := range m.keys {
		hk, _ := HashKey(k)
		out[i] = NewTuple(k, m.vals[hk])
	}
	return out
}

// HashKey converts a Value into a string key suitable for use in a Go map,
// or returns a KeyError if the value's kind cannot be hashed (List, Map,
// Function, Generator, Iterator lack a stable identity-free hash and are
// rejected; Object hashes by identity). Each kind is prefixed with a tag
// byte so that, e.g., the number 1 and the string "1" never collide.
func HashKey(v Value) (string, error) {
	switch x := v.(type) {
	case Empty:
		return "e", nil
	case Bool:
		if x {
			return "b1", nil
		}
		return "b0", nil
	case Number:
		return "n" + formatFloat(float64(x)), nil
	case String:
		return "s" + string(x), nil
	case Range:
		return "r" + x.String(), nil
	case Tuple:
		b := strings.Builder{}
		b.WriteByte('t')
		b.WriteByte('(')
		for i, e := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			hk, err := HashKey(e)
			if err != nil {
				return "", err
			}
			b.WriteString(hk)
		}
		b.WriteByte(')')
		return b.String(), nil
	case *Object:
		return "o" + formatInt(int64(x.ID())), nil
	default:
		return "", NewError(KeyError, "%s is not a hashable key type", v.Kind())
	}
}
