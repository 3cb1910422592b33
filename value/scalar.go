package value

// Empty is the sentinel singleton "no value". It is returned from next()
// at end-of-sequence and is never yielded mid-sequence by a well-formed
// iterator.
type Empty struct{}

// EmptyValue is the single shared Empty instance.
var EmptyValue = Empty{}

func (Empty) Kind() Kind     { return KindEmpty }
func (Empty) String() string { return "()" }

// Bool is a boolean value with structural equality. Compare does not
// order Bool values.
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is an integer-or-float numeric value. Koto does not distinguish
// integer and float representations at the Value level; IsInt reports
// whether the current value happens to be integral.
type Number float64

func (Number) Kind() Kind { return KindNumber }

func (n Number) String() string {
	if n.IsInt() {
		return formatInt(int64(n))
	}
	return formatFloat(float64(n))
}

// IsInt reports whether n has no fractional part.
func (n Number) IsInt() bool {
	return float64(n) == float64(int64(n))
}

// Num2 is a fixed 2-element float vector with elementwise equality and no
// ordering.
type Num2 [2]float64

func (Num2) Kind() Kind     { return KindNum2 }
func (v Num2) String() string { return formatVec(v[:]) }

// Num4 is a fixed 4-element float vector with elementwise equality and no
// ordering.
type Num4 [4]float64

func (Num4) Kind() Kind     { return KindNum4 }
func (v Num4) String() string { return formatVec(v[:]) }
