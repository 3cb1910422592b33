package value

import "fmt"

// Range is a half-open or inclusive integer range. Start and End are the
// literal endpoints as written (e.g. 1..=3 has Start 1, End 3, Inclusive
// true); a reverse range has Start > effective-end and iterates downward.
type Range struct {
	Start, End int64
	Inclusive  bool
}

func (Range) Kind() Kind { return KindRange }

func (r Range) String() string {
	if r.Inclusive {
		return fmt.Sprintf("%d..=%d", r.Start, r.End)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Bounds returns the exclusive [start, end) bounds of the range in its
// natural iteration direction: ascending if Start <= effective end,
// descending otherwise. For a descending range, start > end and values
// are produced start-1, start-2, ..., end.
func (r Range) Bounds() (start, end int64, ascending bool) {
	if r.Inclusive {
		if r.Start <= r.End {
			return r.Start, r.End + 1, true
		}
		return r.Start + 1, r.End, false
	}
	return r.Start, r.End, r.Start <= r.End
}

// Len returns the number of integers the range produces.
func (r Range) Len() int64 {
	start, end, ascending := r.Bounds()
	if ascending {
		if end <= start {
			return 0
		}
		return end - start
	}
	if start <= end {
		return 0
	}
	return start - end
}
