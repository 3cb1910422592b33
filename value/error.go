package value

import "fmt"

// ErrorKind is the closed taxonomy of error kinds the language core can
// raise.
type ErrorKind string

// The error kinds specified for the language core.
const (
	TypeError             ErrorKind = "TypeError"
	IndexError            ErrorKind = "IndexError"
	KeyError              ErrorKind = "KeyError"
	ArityError            ErrorKind = "ArityError"
	GeneratorReentry      ErrorKind = "GeneratorReentry"
	ConcurrentModification ErrorKind = "ConcurrentModification"
	ImportError           ErrorKind = "ImportError"
	AssertionError        ErrorKind = "AssertionError"
)

// Position is a source location. The compiler/parser that produces it is
// out of scope for this module; callers that have a location may set it,
// and callers that don't leave it at its zero value.
type Position struct {
	Line, Column int
}

// Valid reports whether the position carries real line/column info.
func (p Position) Valid() bool { return p.Line > 0 }

// Error is the single error type raised by the language core. It carries
// a kind tag, a human-readable message, and an optional source location,
// per the error handling design in the spec. The teacher keeps two
// parallel hierarchies (Exception and Error in exception.go); this module
// unifies them into one type keyed by Kind, since the spec's taxonomy is
// a single closed set rather than Io's open-ended exception objects.
type Error struct {
	Kind     ErrorKind
	Message  string
	Position Position
}

func (e *Error) Error() string {
	if e.Position.Valid() {
		return fmt.Sprintf("%s: %s (%d:%d)", e.Kind, e.Message, e.Position.Line, e.Position.Column)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError builds an Error of the given kind with a formatted message.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsError reports whether err is a *Error of the given kind.
func AsError(err error, kind ErrorKind) (*Error, bool) {
	e, ok := err.(*Error)
	if !ok || e.Kind != kind {
		return nil, false
	}
	return e, true
}
