package iterator

import (
	"github.com/koto-lang/koto/containerview"
	"github.com/koto-lang/koto/generator"
	"github.com/koto-lang/koto/value"
)

// Source is the thing an Iterator pulls values from: a container view, a
// generator, or an adaptor stage wrapping an upstream Iterator. Grounded
// on the reference implementation's Iterable enum (value_iterator.rs),
// reshaped as an interface so Go's dynamic dispatch stands in for the
// Rust enum match.
type Source interface {
	// Next returns the source's next value, or done=true at
	// end-of-sequence. A false done with a nil error and an Empty value
	// is a legitimate yielded Empty, not termination.
	Next() (v value.Value, done bool, err error)

	// Copy returns an independent source positioned at this source's
	// current cursor.
	Copy() (Source, error)
}

type viewSource struct {
	view containerview.View
}

func newViewSource(v containerview.View) *viewSource {
	return &viewSource{view: v}
}

func (s *viewSource) Next() (value.Value, bool, error) {
	return s.view.Next()
}

func (s *viewSource) Copy() (Source, error) {
	return &viewSource{view: s.view.Clone()}, nil
}

type generatorSource struct {
	gen *generator.Generator
}

func newGeneratorSource(g *generator.Generator) *generatorSource {
	return &generatorSource{gen: g}
}

func (s *generatorSource) Next() (value.Value, bool, error) {
	return s.gen.Next()
}

func (s *generatorSource) Copy() (Source, error) {
	clone, err := s.gen.Copy()
	if err != nil {
		return nil, err
	}
	return &generatorSource{gen: clone}, nil
}
