package value

import "golang.org/x/text/unicode/norm"

// String is an immutable UTF-8 string value. Assignment of a String copies
// the handle cheaply since the underlying Go string is itself immutable
// and already reference-like.
type String string

func (String) Kind() Kind      { return KindString }
func (s String) String() string { return string(s) }

// graphemes splits s into an approximation of extended grapheme clusters
// — a base rune followed by any trailing combining marks — so that
// Index/Slice address the same units containerview's string view iterates
// (containerview/string.go). Duplicated rather than imported from
// containerview, since containerview already depends on value and a
// value->containerview import would cycle.
func graphemes(s string) []string {
	var it norm.Iter
	it.InitString(norm.NFC, s)
	var segs []string
	for !it.Done() {
		segs = append(segs, string(it.Next()))
	}
	return segs
}
