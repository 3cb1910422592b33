// Package value implements Koto's runtime value model: the tagged universe
// of values described by the language core, along with their equality,
// ordering, arithmetic, and indexing contracts.
//
// A compiler or VM (out of scope for this module) is expected to produce
// values of these kinds and call into value.Callable for anything callable,
// whether a native Go function or a user-defined one.
package value
