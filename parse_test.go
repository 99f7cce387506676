package calc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// nodecmp compares parse trees. Funcs compare by identity since every call
// node points into the builtin table.
var nodecmp = cmp.Options{
	cmp.AllowUnexported(node{}, Value{}),
	cmp.Comparer(func(a, b *Func) bool { return a == b }),
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(1)", "1"},
		{"paren-nested", "((((1))))", "1"},

		{"add-assoc", "1+2+3", "(1+2)+3"},
		{"sub-assoc", "10-4-3", "(10-4)-3"},
		{"mul-assoc", "2*3*4", "(2*3)*4"},
		{"div-assoc", "8/4/2", "(8/4)/2"},
		{"mul-before-add", "1+2*3", "1+(2*3)"},
		{"mul-before-sub", "1-2*3", "1-(2*3)"},
		{"div-before-add", "1+6/3", "1+(6/3)"},
		{"mixed-chain", "1+2*3-4/5", "(1+(2*3))-(4/5)"},

		{"neg-mul", "-2*3", "(-2)*3"},
		{"neg-add", "-2+3", "(-2)+3"},
		{"neg-neg", "--2", "-(-2)"},
		{"sub-neg", "2--3", "2-(-3)"},
		{"neg-paren", "-(2+3)", "-((2+3))"},

		{"call-arg", "sqrt(1+1)", "sqrt((1+1))"},
		{"call-neg-arg", "sqrt(-1)", "sqrt(-(1))"},
		{"call-nested", "sin(cos(tan(0.5)))", "sin((cos((tan((0.5))))))"},
		{"call-in-expr", "1+sqrt(4)*2", "1+(sqrt(4)*2)"},
		{"pow-args", "pow(1+2, 2*2)", "pow((1+2), (2*2))"},
		{"pow-nested", "pow(pow(2, 3), 2)", "pow((pow(2, 3)), (2))"},

		{"spaces", " 1 + 2 ", "1+2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.a)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.a, err)
			}
			b, err := ParseString(c.b)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.b, err)
			}
			if d := cmp.Diff(b.n, a.n, nodecmp); d != "" {
				t.Errorf("%q and %q parse differently (-%q +%q):\n%s", c.a, c.b, c.b, c.a, d)
			}
		})
	}
}

func TestParseLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want *node
	}{
		{"2", &node{kind: nodeNum, val: Int(2)}},
		{"2.0", &node{kind: nodeNum, val: Float(2)}},
		{"0.5", &node{kind: nodeNum, val: Float(0.5)}},
		{"10", &node{kind: nodeNum, val: Int(10)}},
	}
	for _, c := range cases {
		a, err := ParseString(c.src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		if d := cmp.Diff(c.want, a.n, nodecmp); d != "" {
			t.Errorf("%q parsed wrong (-want +got):\n%s", c.src, d)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		as   any
	}{
		{"empty", "", new(*EmptyExpressionError)},
		{"blank", "   ", new(*EmptyExpressionError)},
		{"operand-missing", "2 + )", new(*EmptyExpressionError)},
		{"trailing-op", "1+", new(*EmptyExpressionError)},
		{"empty-parens", "()", new(*EmptyExpressionError)},
		{"empty-arg", "sqrt()", new(*EmptyExpressionError)},
		{"trailing-arg-sep", "pow(1,)", new(*EmptyExpressionError)},

		{"close-only", ")", new(*BracketError)},
		{"unclosed", "(1+2", new(*BracketError)},
		{"unclosed-call", "sqrt(4", new(*BracketError)},
		{"unclosed-call-empty", "sqrt(", new(*BracketError)},
		{"close-after-expr", "1+2)", new(*BracketError)},

		{"adjacent-nums", "1 2", new(*TokenError)},
		{"adjacent-paren", "2(3)", new(*TokenError)},
		{"bare-func", "sqrt 2", new(*TokenError)},
		{"func-at-end", "1+sqrt", new(*TokenError)},

		{"sep-only", ",", new(*SeparatorError)},
		{"sep-toplevel", "1,2", new(*SeparatorError)},
		{"sep-in-parens", "(1,2)", new(*SeparatorError)},
		{"sep-leading-arg", "pow(,1)", new(*SeparatorError)},

		{"pow-one-arg", "pow(2)", new(*CallError)},
		{"pow-three-args", "pow(1, 2, 3)", new(*CallError)},
		{"sqrt-two-args", "sqrt(1, 2)", new(*CallError)},

		{"op-where-operand", "*1", new(*OperatorError)},
		{"op-after-op", "1*+2", new(*OperatorError)},
		{"unary-plus", "+1", new(*OperatorError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err == nil {
				t.Fatalf("%q parsed to %v with no error", c.src, a)
			}
			if !errors.As(err, c.as) {
				t.Errorf("%q gave wrong error type %T: %v", c.src, err, err)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Errorf("%q error %T does not implement InputError", c.src, err)
			} else if ie.Pos() < 0 || ie.Pos() > len(c.src)+1 {
				t.Errorf("%q error position %d out of range", c.src, ie.Pos())
			}
		})
	}
}

func TestParseFailsFast(t *testing.T) {
	// The first malformed token decides the error even when later input is
	// also wrong.
	_, err := ParseString("1 + bogus(2 * nonsense")
	var ne *NameError
	if !errors.As(err, &ne) {
		t.Fatalf("wrong error type %T: %v", err, err)
	}
	if ne.Name != "bogus" {
		t.Errorf(`error names %q, not "bogus"`, ne.Name)
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1+2*3", "([1] + [(2) * (3)])"},
		{"sqrt(4)", "(sqrt[(4)])"},
		{"pow(2, 3)", "(pow[(2), (3)])"},
		{"-1", "(-[1])"},
		{"2.5/5", "([2.5] / [5])"},
	}
	for _, c := range cases {
		a, err := ParseString(c.src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		if got := a.String(); got != c.want {
			t.Errorf("%q formats as %q, want %q", c.src, got, c.want)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	src := "cos(1) + (2 * 3 - 10.5)/sqrt(4) - pow(2, 10)"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(strings.NewReader(src)); err != nil {
			b.Fatal(err)
		}
	}
}
