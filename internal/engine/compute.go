// Package engine sequences mesh construction, expression evaluation, the
// difference stencil and optional validation into a single stateless
// compute operation.
package engine

import (
	"fmt"

	"github.com/san-kum/fdgrad/internal/expr"
	"github.com/san-kum/fdgrad/internal/grid"
	"github.com/san-kum/fdgrad/internal/stencil"
	"github.com/san-kum/fdgrad/internal/validate"
)

// Request describes one derivative computation.
type Request struct {
	Function string
	Domain   grid.Domain
	Nx, Ny   int

	// AnalyticalDx and AnalyticalDy enable validation when both are set.
	AnalyticalDx string
	AnalyticalDy string
}

// Compute evaluates the request. Failures in mesh construction, primary
// expression compilation or the stencil abort the request; a failure
// limited to the analytical branch degrades the result to
// validation-absent and is recorded on the bundle instead.
func Compute(req Request) (*Result, error) {
	m, err := grid.NewUniform(req.Domain, req.Nx, req.Ny)
	if err != nil {
		return nil, err
	}

	f, err := expr.Compile(req.Function)
	if err != nil {
		return nil, err
	}
	z := f.EvalField(m)

	dfdx, dfdy, err := stencil.Gradient(z, m.Hx, m.Hy)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	res := &Result{
		Function: f.Source(),
		Domain:   m.Domain,
		Mesh:     MeshInfo{Nx: m.Nx, Ny: m.Ny, Hx: m.Hx, Hy: m.Hy},
		FieldData: FieldData{
			X:       m.X.Rows(),
			Y:       m.Y.Rows(),
			Z:       z.Rows(),
			DfDx:    dfdx.Rows(),
			DfDy:    dfdy.Rows(),
			XVector: m.XVec,
			YVector: m.YVec,
		},
		Stats: Stats{
			FMin:    Float(z.Min()),
			FMax:    Float(z.Max()),
			DfDxMin: Float(dfdx.Min()),
			DfDxMax: Float(dfdx.Max()),
			DfDyMin: Float(dfdy.Min()),
			DfDyMax: Float(dfdy.Max()),
		},
		X:    m.X,
		Y:    m.Y,
		Z:    z,
		DfDx: dfdx,
		DfDy: dfdy,
	}

	if req.AnalyticalDx != "" && req.AnalyticalDy != "" {
		report, verr := validate.Against(m, dfdx, dfdy, req.AnalyticalDx, req.AnalyticalDy)
		if verr != nil {
			res.ValidationError = verr.Error()
		} else {
			res.Validation = report
		}
	}

	res.Degenerate = !z.IsFinite() || !dfdx.IsFinite() || !dfdy.IsFinite()

	return res, nil
}
