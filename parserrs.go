package calc

import "strconv"

// TokenError is an error indicating a token in a position the grammar does not
// allow, e.g. two adjacent numbers or a function name without its argument
// list. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the offending token. It is empty if the input
	// ended where more was expected.
	Token string
	// Expected describes what the parser would have accepted instead.
	Expected string
}

func (err *TokenError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "unexpected end of input, expected "+err.Expected)
	}
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token)+", expected "+err.Expected)
}

func (err *TokenError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that is not
// understood by the parser. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the token that revealed the mismatch.
	Col int
	// Left is the opening parenthesis.
	Left string
	// Right is the mismatched closing parenthesis.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a comma outside a function argument
// list. It implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the function call tried to imply.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*NameError)(nil)
)
