package expr

import (
	"fmt"
	"strings"

	"github.com/san-kum/fdgrad/internal/grid"
)

// Error reports an expression that could not be compiled, together with the
// underlying cause.
type Error struct {
	Expr string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("expr: cannot evaluate %q: %v", e.Expr, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Expr is a compiled expression of the variables x and y. It holds no
// mutable state and may be evaluated concurrently.
type Expr struct {
	src  string
	root node
}

// Compile parses src against the closed grammar. Any identifier outside the
// allow-list (or any syntax outside literals, arithmetic and calls) fails
// here, before anything is evaluated.
func Compile(src string) (*Expr, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, &Error{Expr: src, Err: fmt.Errorf("empty expression")}
	}
	toks, err := lex(trimmed)
	if err != nil {
		return nil, &Error{Expr: src, Err: err}
	}
	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, &Error{Expr: src, Err: err}
	}
	if trailing := p.peek(); trailing.kind != tokEOF {
		return nil, &Error{Expr: src, Err: fmt.Errorf("unexpected %q at position %d", trailing.text, trailing.pos)}
	}
	return &Expr{src: trimmed, root: root}, nil
}

// Source returns the expression text as compiled.
func (e *Expr) Source() string { return e.src }

// Eval computes the expression at a single point. Arithmetic faults follow
// IEEE semantics: log of a negative yields NaN, division by zero yields Inf.
func (e *Expr) Eval(x, y float64) float64 {
	return e.root.eval(x, y)
}

// EvalField evaluates the expression at every mesh point, producing a field
// of the mesh's shape.
func (e *Expr) EvalField(m *grid.Mesh) grid.Field {
	z := grid.NewField(m.Ny, m.Nx)
	for i := 0; i < m.Ny; i++ {
		for j := 0; j < m.Nx; j++ {
			z.Set(i, j, e.root.eval(m.XVec[j], m.YVec[i]))
		}
	}
	return z
}
