package calc_test

import (
	"testing"

	"github.com/saad17g/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("1+2*3")
	f.Add("pow(2, 10)")
	f.Add("sqrt(-1)")
	f.Add("1/0")
	f.Fuzz(func(t *testing.T, s string) {
		v, err := calc.EvalString(s)
		if err != nil {
			return
		}
		// Evaluation is stateless, so a second pass must agree. Compare
		// formatted values so that NaN equals itself.
		w, err := calc.EvalString(s)
		if err != nil {
			t.Errorf("%q evaluated to %v, then errored: %v", s, v, err)
			return
		}
		if v.String() != w.String() {
			t.Errorf("%q evaluated to %v, then to %v", s, v, w)
		}
	})
}
