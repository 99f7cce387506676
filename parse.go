package calc

import (
	"io"
	"strings"
)

// Expr = num | Call | Neg | Add | Sub | Mul | Div | '(' Expr ')'
// Call = funcname '(' Expr ')' | 'pow' '(' Expr ',' Expr ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression so it can be evaluated.
func Parse(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	if n == nil || tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok)
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, until operator) (*node, error) {
	n, err := parselhs(scan, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			// Binary operator.
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenNum, tokenIdent, tokenOpen:
			// Two adjacent terms, e.g. "2 3" or "2 (3)". There is no implicit
			// multiplication.
			return nil, &TokenError{Col: tok.pos, Token: tok.text, Expected: "an operator"}
		case tokenClose, tokenSep, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// and any encountered token must be valid as the start of a subexpression.
func parselhs(scan *lexer, until operator) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.kind {
	case tokenNum:
		n = &node{kind: nodeNum, val: tok.val}
	case tokenIdent:
		// The lexer only produces idents naming builtins.
		n, err = parsecall(scan, builtins[tok.text], tok.pos)
		if err != nil {
			return nil, err
		}
	case tokenOp:
		// Unary operator.
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		rhs, err := parseterm(scan, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := scan.must()
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = &node{kind: prec.op, left: rhs}
	case tokenOpen:
		rhs, err := parseterm(scan, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, itShouldNotHaveEndedThisWay(end)
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = rhs
	case tokenClose:
		// Let the caller decide what to do.
		scan.push(tok)
		return nil, nil
	case tokenSep:
		return nil, &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("calc: unknown token: " + tok.String())
	}
	return n, nil
}

// parsecall parses the parenthesized argument list of a call of fn. col is the
// position of the function name, which arity errors point at.
func parsecall(scan *lexer, fn *Func, col int) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOpen {
		return nil, &TokenError{Col: tok.pos, Token: tok.text, Expected: `"("`}
	}
	args, err := parsearglist(scan)
	if err != nil {
		return nil, err
	}
	end := scan.must()
	if end.kind != tokenClose {
		panic("calc: parsearglist ended on " + end.String() + " instead of close paren")
	}
	if len(args) != fn.arity {
		return nil, &CallError{Col: col, Func: fn.name, Len: len(args)}
	}
	n := &node{kind: nodeCall, fn: fn, left: args[0]}
	if len(args) > 1 {
		n.right = args[1]
	}
	return n, nil
}

// parsearglist parses a parenthesized list of one or more args. The closing
// parenthesis is left pushed for the caller.
func parsearglist(scan *lexer) ([]*node, error) {
	var args []*node
	for {
		rhs, err := parseterm(scan, exprprec)
		if err != nil {
			// As a special case, reporting an unclosed parenthesis is more
			// helpful than empty expression, if that's what we'd do here.
			if ee, _ := err.(*EmptyExpressionError); ee != nil && ee.End == "" {
				err = &BracketError{Col: ee.Col, Left: "("}
			}
			return nil, err
		}
		end := scan.must()
		if rhs == nil {
			// No expression parsed, e.g. sqrt() or pow(1,).
			if end.kind == tokenEOF {
				return nil, &BracketError{Col: end.pos, Left: "(", Right: ""}
			}
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		args = append(args, rhs)
		switch end.kind {
		case tokenClose:
			// Caller consumes the close paren.
			scan.push(end)
			return args, nil
		case tokenSep:
			continue
		case tokenEOF:
			return nil, &BracketError{Col: end.pos, Left: "(", Right: ""}
		default:
			panic("calc: parseterm ended on non-end token " + end.String())
		}
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression.
func itShouldNotHaveEndedThisWay(tok lexToken) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open paren that was not closed.
		return &BracketError{Col: tok.pos, Left: "(", Right: ""}
	case tokenClose:
		return &BracketError{Col: tok.pos, Left: "", Right: tok.text}
	case tokenSep:
		// Separator outside a function call.
		return &SeparatorError{Col: tok.pos, Sep: tok.text}
	default:
		panic("calc: it really should not have ended this way: " + tok.String())
	}
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
