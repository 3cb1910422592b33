// Package containerview provides the uniform, restartable-but-one-shot
// cursor abstraction ("view") over Koto's built-in container kinds: List,
// Tuple, Map, String, Range, Num2, and Num4. A View is the lowest layer
// the iterator package builds on; it knows nothing about adaptors,
// generators, or copy semantics beyond its own cursor position.
package containerview
