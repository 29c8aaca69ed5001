package expr

import "math"

// node is an arithmetic tree evaluated pointwise at (x, y).
type node interface {
	eval(x, y float64) float64
}

type numNode float64

func (n numNode) eval(_, _ float64) float64 { return float64(n) }

type varNode struct {
	isY bool
}

func (v varNode) eval(x, y float64) float64 {
	if v.isY {
		return y
	}
	return x
}

type callNode struct {
	name string
	fn   func(float64) float64
	arg  node
}

func (c callNode) eval(x, y float64) float64 { return c.fn(c.arg.eval(x, y)) }

type negNode struct {
	arg node
}

func (n negNode) eval(x, y float64) float64 { return -n.arg.eval(x, y) }

type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opPow
)

type binNode struct {
	op   binOp
	l, r node
}

func (b binNode) eval(x, y float64) float64 {
	lv := b.l.eval(x, y)
	rv := b.r.eval(x, y)
	switch b.op {
	case opAdd:
		return lv + rv
	case opSub:
		return lv - rv
	case opMul:
		return lv * rv
	case opDiv:
		return lv / rv
	default:
		return math.Pow(lv, rv)
	}
}
