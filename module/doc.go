// Package module implements module resolution, import binding, and the
// mutable iterator extension registry: the mechanism by which a compiled
// script's import statements and an embedding host's registered
// functions both become visible to running Koto code.
package module
