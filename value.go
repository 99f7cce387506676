package calc

import "strconv"

// Value is the result of evaluating an expression. A Value is either an
// integer or a float, decided by the literals and operators of the
// expression, never both.
type Value struct {
	kind valueKind
	i    int64
	f    float64
}

type valueKind int8

const (
	valueInt valueKind = iota
	valueFloat
)

// Int creates an integer Value.
func Int(i int64) Value {
	return Value{kind: valueInt, i: i}
}

// Float creates a floating-point Value.
func Float(f float64) Value {
	return Value{kind: valueFloat, f: f}
}

// IsInt reports whether v is an integer.
func (v Value) IsInt() bool {
	return v.kind == valueInt
}

// Int64 returns the value of an integer Value. Panics if v is a float; use
// Float64 for values of either kind.
func (v Value) Int64() int64 {
	if v.kind != valueInt {
		panic("calc: Int64 on float value " + v.String())
	}
	return v.i
}

// Float64 returns v as a float64, converting an integer value if necessary.
func (v Value) Float64() float64 {
	if v.kind == valueInt {
		return float64(v.i)
	}
	return v.f
}

// String formats integers without a decimal point and floats in their
// shortest exact form.
func (v Value) String() string {
	if v.kind == valueInt {
		return strconv.FormatInt(v.i, 10)
	}
	return strconv.FormatFloat(v.f, 'g', -1, 64)
}
