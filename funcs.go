package calc

import (
	"math"
	"strconv"
)

// Func is a function callable from an expression. The set of functions is
// fixed; expressions name them with a parenthesized argument list, like
// sqrt(2) or pow(2, 10).
type Func struct {
	name  string
	arity int
	call  func(args []Value) (Value, error)
}

var builtins = map[string]*Func{
	"cos":  monadic("cos", math.Cos, nil),
	"sin":  monadic("sin", math.Sin, nil),
	"tan":  monadic("tan", math.Tan, nil),
	"acos": monadic("acos", math.Acos, within1),
	"asin": monadic("asin", math.Asin, within1),
	"atan": monadic("atan", math.Atan, nil),
	"sqrt": monadic("sqrt", math.Sqrt, func(x float64) bool { return x >= 0 }),
	"pow":  {name: "pow", arity: 2, call: pow},
}

// monadic wraps a function of one float into a Func. The argument promotes to
// float and the result is always a float. If domain is non-nil, arguments for
// which it returns false evaluate to a DomainError instead of a silent NaN.
func monadic(name string, f func(float64) float64, domain func(float64) bool) *Func {
	return &Func{
		name:  name,
		arity: 1,
		call: func(args []Value) (Value, error) {
			x := args[0].Float64()
			if domain != nil && !domain(x) {
				return Value{}, &DomainError{X: x, Func: name}
			}
			return Float(f(x)), nil
		},
	}
}

// within1 is the domain of asin and acos.
func within1(x float64) bool {
	return -1 <= x && x <= 1
}

// pow raises args[0] to args[1]. With two integers and a non-negative
// exponent the result stays an integer, computed by checked multiplication;
// otherwise both arguments promote to float.
func pow(args []Value) (Value, error) {
	b, e := args[0], args[1]
	if !b.IsInt() || !e.IsInt() || e.Int64() < 0 {
		return Float(math.Pow(b.Float64(), e.Float64())), nil
	}
	return ipow(b.Int64(), e.Int64())
}

// ipow is exponentiation by squaring.
func ipow(b, e int64) (Value, error) {
	r := int64(1)
	for e > 0 {
		if e&1 != 0 {
			var err error
			r, err = mulInt(r, b, "pow")
			if err != nil {
				return Value{}, err
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		var err error
		b, err = mulInt(b, b, "pow")
		if err != nil {
			return Value{}, err
		}
	}
	return Int(r), nil
}

// Funcs returns the names of the functions available in expressions, sorted.
func Funcs() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// DomainError is an error from calling a function on an argument outside its
// domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is the name of the function.
	Func string
}

func (err *DomainError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}
