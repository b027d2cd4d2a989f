package value

import (
	"strconv"

	"github.com/chris-martin/hocon-go/origin"
)

// NumberKind classifies how a number literal was written: a literal with
// no '.', 'e', or 'E' that fits in an int64 is NumberInt64; anything with
// a decimal point or exponent is NumberDouble. There is no separate long
// kind: a digits-only literal too large for int64 is stored as
// NumberDouble.
type NumberKind int

const (
	NumberInt64 NumberKind = iota
	NumberDouble
)

// Number is a numeric leaf value. The original literal text is retained
// so re-rendering reproduces it exactly (spec.md §3, Number), while
// IntValue/DoubleValue give the parsed numeric value for arithmetic-free
// consumers.
type Number struct {
	org  origin.Origin
	Text string
	Num  NumberKind

	IntValue    int64
	DoubleValue float64
}

// NewNumber classifies and parses a numeric literal as the tokenizer
// produced it.
func NewNumber(o origin.Origin, text string, isDouble bool) (Number, error) {
	n := Number{org: o, Text: text}
	if isDouble {
		n.Num = NumberDouble
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Number{}, err
		}
		n.DoubleValue = f
		return n, nil
	}
	n.Num = NumberInt64
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Too large for int64: fall back to double, as the original
		// distinguishes "long" only by magnitude, not by a different
		// printed form.
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return Number{}, err
		}
		n.Num = NumberDouble
		n.DoubleValue = f
		return n, nil
	}
	n.IntValue = i
	return n, nil
}

func (n Number) Kind() Kind                   { return KindNumber }
func (n Number) Origin() origin.Origin        { return n.org }
func (n Number) ResolveStatus() ResolveStatus { return Resolved }
func (n Number) IgnoresFallbacks() bool       { return true }
func (n Number) WithOrigin(o origin.Origin) Value {
	n.org = o
	return n
}

func (n Number) equalValue(o Number) bool {
	return n.asFloat() == o.asFloat()
}

func (n Number) asFloat() float64 {
	if n.Num == NumberDouble {
		return n.DoubleValue
	}
	return float64(n.IntValue)
}
