package calc_test

import (
	"fmt"

	"github.com/saad17g/calc"
)

func Example() {
	v, err := calc.EvalString("1 + (2 * 3 - 10.5)/sqrt(4)")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: -1.25
}

func ExampleEvalString_kinds() {
	a, _ := calc.EvalString("pow(2, 10) - 24")
	b, _ := calc.EvalString("pow(2.0, 10) - 24")
	fmt.Println(a, a.IsInt())
	fmt.Println(b, b.IsInt())
	// Output:
	// 1000 true
	// 1000 false
}

func ExampleExpr_String() {
	a, _ := calc.ParseString("1+2*3")
	fmt.Println(a)
	// Output: ([1] + [(2) * (3)])
}

func ExampleEvalString_errors() {
	_, err := calc.EvalString("1/0")
	fmt.Println(err)
	_, err = calc.EvalString("sqrt(-1)")
	fmt.Println(err)
	// Output:
	// division by zero
	// -1 outside domain of sqrt
}
