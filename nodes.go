package calc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	val Value // literal value for nodeNum
	fn  *Func // function for nodeCall

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push val

	nodeCall // call fn; left is the argument, right is pow's second argument

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeCall:
		return "Call"
	case nodeNeg:
		return "Neg"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.val.String())
	case nodeCall:
		b.WriteString(n.fn.name)
		n.fmtargs(b, !square)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeAdd:
		n.left.fmt(b, !square)
		b.WriteString(" + ")
		n.right.fmt(b, !square)
	case nodeSub:
		n.left.fmt(b, !square)
		b.WriteString(" - ")
		n.right.fmt(b, !square)
	case nodeMul:
		n.left.fmt(b, !square)
		b.WriteString(" * ")
		n.right.fmt(b, !square)
	case nodeDiv:
		n.left.fmt(b, !square)
		b.WriteString(" / ")
		n.right.fmt(b, !square)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) fmtargs(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	n.left.fmt(b, !square)
	if n.right != nil {
		b.WriteString(", ")
		n.right.fmt(b, !square)
	}
}
