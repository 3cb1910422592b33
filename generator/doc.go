// Package generator drives user-defined generator functions: bodies that
// call yield to produce values and suspend between calls. The compiler/VM
// that evaluates a generator's script body is out of this module's scope
// (per the core's stated non-goals); generator.Body is the function-call
// interface such a collaborator is expected to implement.
//
// Execution is modeled as one goroutine per generator frame, handed off
// to the driver through a pair of unbuffered channels — the same
// rendezvous shape as a single-value producer/consumer pipe — so that at
// most one side is ever running, matching the single-threaded cooperative
// semantics the rest of the core assumes.
package generator
