package containerview

import (
	"golang.org/x/text/unicode/norm"

	"github.com/koto-lang/koto/value"
)

// stringView walks a String as a sequence of "displayed character"
// segments rather than raw codepoints, resolving the spec's open question
// on string iteration granularity in favor of treating a base character
// plus any combining marks attached to it as one produced element.
// Grounded on the teacher's use of golang.org/x/text encoding packages
// (sequence-string.go) for text-aware string handling, repurposing the
// module's norm.Iter segmenter — which groups a base rune with its
// trailing combining marks — as an approximation of grapheme clusters.
type stringView struct {
	segments []string
	index    int
}

func newStringView(s value.String) *stringView {
	return &stringView{segments: segmentString(string(s))}
}

func segmentString(s string) []string {
	var it norm.Iter
	it.InitString(norm.NFC, s)
	var segs []string
	for !it.Done() {
		segs = append(segs, string(it.Next()))
	}
	return segs
}

func (v *stringView) Next() (value.Value, bool, error) {
	if v.index >= len(v.segments) {
		return nil, true, nil
	}
	seg := v.segments[v.index]
	v.index++
	return value.String(seg), false, nil
}

func (v *stringView) Clone() View {
	return &stringView{segments: v.segments, index: v.index}
}
