package expr

import (
	"math"
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	val  float64               // nodeNum
	name string                // nodeCall
	fn   func(float64) float64 // nodeCall

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push val
	nodeVar // push x

	nodeCall // apply fn to left

	nodeNeg // negate left
	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // left ^ right
)

// eval walks the tree at a point. It is allocation-free: undefined points
// surface as NaN through IEEE arithmetic and the math package, and signed
// infinities pass through untouched so callers can observe divergence.
func (n *node) eval(x float64) float64 {
	switch n.kind {
	case nodeNum:
		return n.val
	case nodeVar:
		return x
	case nodeCall:
		return n.fn(n.left.eval(x))
	case nodeNeg:
		return -n.left.eval(x)
	case nodeAdd:
		return n.left.eval(x) + n.right.eval(x)
	case nodeSub:
		return n.left.eval(x) - n.right.eval(x)
	case nodeMul:
		return n.left.eval(x) * n.right.eval(x)
	case nodeDiv:
		return n.left.eval(x) / n.right.eval(x)
	case nodePow:
		return math.Pow(n.left.eval(x), n.right.eval(x))
	}
	return math.NaN()
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeVar:
		b.WriteByte('x')
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	default:
		op := map[nodeKind]string{nodeAdd: " + ", nodeSub: " - ", nodeMul: " * ", nodeDiv: " / ", nodePow: " ^ "}[n.kind]
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(op)
		n.right.fmt(b)
		b.WriteByte(')')
	}
}
