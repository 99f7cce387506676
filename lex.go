package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	val  Value // set for tokenNum
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer or float literal.
	tokenNum
	// tokenIdent is a function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSep is the function arguments separator, a comma.
	tokenSep
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSep:
		return "Sep"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("calc: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("calc: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is encountered
// before any non-whitespace characters, the result is an EOF token with a nil
// error. Subsequent times, if the EOF token is not pushed, the result is an
// empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.pos++
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			v, err := l.scanNum()
			if err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			tok.val = v
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			if builtins[tok.text] == nil {
				return tok, &NameError{Name: tok.text, Col: tok.pos}
			}
			tok.kind = tokenIdent
			return tok, nil
		case r == ',':
			tok.text = ","
			tok.kind = tokenSep
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				tok.text = Operators[k : k+1]
				tok.kind = tokenOp
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans an integer or float literal: one or more digits, optionally
// followed by a decimal point and one or more digits. The presence of the
// decimal point decides the kind of the resulting Value.
func (l *lexer) scanNum() (Value, error) {
	var dot bool
scan:
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Value{}, err
		}
		switch {
		case '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		case r == '.':
			l.buf.WriteRune(r)
			if dot {
				return Value{}, l.error("number")
			}
			dot = true
		default:
			l.unreadRune()
			break scan
		}
	}
	text := l.buf.String()
	if !dot {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			// Only out of range is possible here.
			return Value{}, l.error("number")
		}
		return Int(v), nil
	}
	if strings.HasSuffix(text, ".") {
		return Value{}, l.error("number")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, l.error("number")
	}
	return Float(v), nil
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// NameError indicates an identifier which is not the name of any function.
// It implements InputError.
type NameError struct {
	// Name is the unrecognized identifier.
	Name string
	// Col is the position of the start of the identifier.
	Col int
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}
