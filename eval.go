package calc

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Eval computes the value of the expression. Evaluation is stateless: the same
// expression may be evaluated any number of times, concurrently if desired,
// with identical results.
func (e *Expr) Eval() (Value, error) {
	return e.n.eval()
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner) (Value, error) {
	a, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (Value, error) {
	return Eval(strings.NewReader(src))
}

// eval computes the node's value bottom-up.
func (n *node) eval() (Value, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeCall:
		args := make([]Value, 1, 2)
		v, err := n.left.eval()
		if err != nil {
			return Value{}, err
		}
		args[0] = v
		if n.right != nil {
			v, err := n.right.eval()
			if err != nil {
				return Value{}, err
			}
			args = append(args, v)
		}
		return n.fn.call(args)
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return Value{}, err
		}
		return neg(v)
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		l, err := n.left.eval()
		if err != nil {
			return Value{}, err
		}
		r, err := n.right.eval()
		if err != nil {
			return Value{}, err
		}
		switch n.kind {
		case nodeAdd:
			return add(l, r)
		case nodeSub:
			return sub(l, r)
		case nodeMul:
			return mul(l, r)
		default:
			return div(l, r)
		}
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

// neg negates a value, preserving its kind.
func neg(v Value) (Value, error) {
	if !v.IsInt() {
		return Float(-v.f), nil
	}
	if v.i == math.MinInt64 {
		return Value{}, &OverflowError{Op: "-"}
	}
	return Int(-v.i), nil
}

// add sums two values. Two integers stay an integer; otherwise both operands
// promote to float.
func add(l, r Value) (Value, error) {
	if !l.IsInt() || !r.IsInt() {
		return Float(l.Float64() + r.Float64()), nil
	}
	s := l.i + r.i
	if (r.i > 0 && s < l.i) || (r.i < 0 && s > l.i) {
		return Value{}, &OverflowError{Op: "+"}
	}
	return Int(s), nil
}

func sub(l, r Value) (Value, error) {
	if !l.IsInt() || !r.IsInt() {
		return Float(l.Float64() - r.Float64()), nil
	}
	s := l.i - r.i
	if (r.i < 0 && s < l.i) || (r.i > 0 && s > l.i) {
		return Value{}, &OverflowError{Op: "-"}
	}
	return Int(s), nil
}

func mul(l, r Value) (Value, error) {
	if !l.IsInt() || !r.IsInt() {
		return Float(l.Float64() * r.Float64()), nil
	}
	p, err := mulInt(l.i, r.i, "*")
	if err != nil {
		return Value{}, err
	}
	return Int(p), nil
}

// mulInt multiplies two int64s, reporting overflow as an OverflowError naming
// op.
func mulInt(a, b int64, op string) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// MinInt64 * -1 survives the quotient check below because the product
	// wraps to the dividend.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, &OverflowError{Op: op}
	}
	p := a * b
	if p/b != a {
		return 0, &OverflowError{Op: op}
	}
	return p, nil
}

// div divides two values. The result is always a float so that integer
// operands are not silently truncated.
func div(l, r Value) (Value, error) {
	d := r.Float64()
	if d == 0 {
		return Value{}, &DivideByZeroError{}
	}
	return Float(l.Float64() / d), nil
}

// DivideByZeroError is an error from evaluating a division whose divisor is
// zero.
type DivideByZeroError struct{}

func (err *DivideByZeroError) Error() string {
	return "division by zero"
}

// OverflowError is an error from an integer operation whose result does not
// fit in an int64.
type OverflowError struct {
	// Op is the operator or function that overflowed.
	Op string
}

func (err *OverflowError) Error() string {
	return "integer overflow in " + strconv.Quote(err.Op)
}
