package iterator

import (
	"sync"

	"github.com/koto-lang/koto/containerview"
	"github.com/koto-lang/koto/generator"
	"github.com/koto-lang/koto/value"
)

// Iterator is the polymorphic handle over a Source. It is always used as
// a pointer: Go's ordinary pointer-assignment aliasing already gives the
// spec's "shared cursor" invariant (y := x advances both) without any
// manual reference counting, so there is no separate refcount field
// here — Copy is the only operation that produces a second, independent
// handle.
type Iterator struct {
	id uint64

	mu  sync.Mutex
	src Source
}

// New wraps src as an Iterator with a fresh identity.
func New(src Source) *Iterator {
	return &Iterator{id: value.NextID(), src: src}
}

// NewFromView wraps a container view as an Iterator.
func NewFromView(v containerview.View) *Iterator {
	return New(newViewSource(v))
}

// NewFromGenerator wraps a generator frame as an Iterator.
func NewFromGenerator(g *generator.Generator) *Iterator {
	return New(newGeneratorSource(g))
}

func (*Iterator) Kind() value.Kind { return value.KindIterator }

func (it *Iterator) String() string { return "Iterator" }

// ID returns the iterator's unique identity, used for identity equality.
func (it *Iterator) ID() uint64 { return it.id }

// Next advances the iterator once, returning value.EmptyValue at end.
// A legitimately yielded Empty and end-of-sequence both come back as
// value.EmptyValue here; the adaptors and terminals in this package use
// advance below, which tells the two apart.
func (it *Iterator) Next() (value.Value, error) {
	it.mu.Lock()
	defer it.mu.Unlock()
	v, done, err := it.src.Next()
	if err != nil {
		return value.EmptyValue, err
	}
	if done {
		return value.EmptyValue, nil
	}
	return v, nil
}

// advance is the internal primitive every adaptor and terminal in this
// package builds on: it distinguishes end-of-sequence from a legitimately
// yielded Empty, which the public Next cannot.
func (it *Iterator) advance() (value.Value, bool, error) {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.src.Next()
}

// Copy produces a new Iterator with an independent cursor positioned at
// this iterator's current position. For a view-backed iterator this
// duplicates the cursor offset; for a generator-backed iterator this
// replays the frame (see generator.Generator.Copy); for an adaptor stack
// this recursively copies each stage's upstream.
func (it *Iterator) Copy() (*Iterator, error) {
	it.mu.Lock()
	defer it.mu.Unlock()
	src, err := it.src.Copy()
	if err != nil {
		return nil, err
	}
	return New(src), nil
}
