// Package validate compares numerically computed derivative fields against
// exact analytical expressions and summarizes the error.
package validate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/fdgrad/internal/expr"
	"github.com/san-kum/fdgrad/internal/grid"
)

// RelEps is added to |exact| in the relative-error denominator so points
// where the exact derivative vanishes stay bounded. Fixed by contract.
const RelEps = 1e-10

// Metrics summarizes the pointwise error between a numerical and an exact
// derivative field.
type Metrics struct {
	MaxAbs  float64 `json:"max_error_abs" yaml:"max_error_abs"`
	MeanAbs float64 `json:"mean_error_abs" yaml:"mean_error_abs"`
	MaxRel  float64 `json:"max_error_rel" yaml:"max_error_rel"`
	MeanRel float64 `json:"mean_error_rel" yaml:"mean_error_rel"`
	L2      float64 `json:"l2_norm" yaml:"l2_norm"`
	RMSE    float64 `json:"rmse" yaml:"rmse"`
}

// Report holds the comparison for both partial derivatives.
type Report struct {
	DfDx Metrics `json:"df_dx" yaml:"df_dx"`
	DfDy Metrics `json:"df_dy" yaml:"df_dy"`
}

// Compare computes error metrics between a numerical field and the exact one.
func Compare(num, exact grid.Field) (Metrics, error) {
	if !num.SameShape(exact) {
		return Metrics{}, fmt.Errorf("validate: fields have different shapes: %dx%d vs %dx%d",
			num.Ny, num.Nx, exact.Ny, exact.Nx)
	}

	n := len(num.Data)
	absErr := make([]float64, n)
	relErr := make([]float64, n)
	for k := 0; k < n; k++ {
		e := math.Abs(num.Data[k] - exact.Data[k])
		absErr[k] = e
		relErr[k] = e / (math.Abs(exact.Data[k]) + RelEps)
	}

	l2 := floats.Norm(absErr, 2)
	return Metrics{
		MaxAbs:  floats.Max(absErr),
		MeanAbs: stat.Mean(absErr, nil),
		MaxRel:  floats.Max(relErr),
		MeanRel: stat.Mean(relErr, nil),
		L2:      l2,
		RMSE:    l2 / math.Sqrt(float64(n)),
	}, nil
}

// Against evaluates the two analytical derivative expressions on the mesh
// and compares them with the numerical fields. Any failure, including an
// expression that does not compile, returns a nil report and the error;
// callers treat validation as best-effort and carry on without it.
func Against(m *grid.Mesh, dfdxNum, dfdyNum grid.Field, dxExpr, dyExpr string) (*Report, error) {
	ex, err := expr.Compile(dxExpr)
	if err != nil {
		return nil, err
	}
	ey, err := expr.Compile(dyExpr)
	if err != nil {
		return nil, err
	}

	dxExact := ex.EvalField(m)
	dyExact := ey.EvalField(m)
	if !dxExact.IsFinite() || !dyExact.IsFinite() {
		return nil, fmt.Errorf("validate: analytical derivatives produced non-finite values on this domain")
	}
	if !dfdxNum.IsFinite() || !dfdyNum.IsFinite() {
		return nil, fmt.Errorf("validate: numerical derivatives contain non-finite values")
	}

	dxMetrics, err := Compare(dfdxNum, dxExact)
	if err != nil {
		return nil, err
	}
	dyMetrics, err := Compare(dfdyNum, dyExact)
	if err != nil {
		return nil, err
	}

	return &Report{DfDx: dxMetrics, DfDy: dyMetrics}, nil
}
