// Package iterator implements Koto's Iterator value: the polymorphic
// handle over container views and generators, the lazy adaptor stack
// built on top of it, and the eager terminal operations that drain it.
//
// Grounded on the Iterable enum split in the reference implementation's
// value_iterator.rs (Range/List/Map/Generator/External), reshaped into an
// idiomatic Go Source interface so the same Iterator type wraps any of
// them uniformly.
package iterator
