package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Domain is the rectangular region [XMin, XMax] x [YMin, YMax].
type Domain struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

func (d Domain) validate() error {
	for _, v := range []float64{d.XMin, d.XMax, d.YMin, d.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: bounds must be finite", ErrInvalidDomain)
		}
	}
	if d.XMin >= d.XMax {
		return fmt.Errorf("%w: x_min %g >= x_max %g", ErrInvalidDomain, d.XMin, d.XMax)
	}
	if d.YMin >= d.YMax {
		return fmt.Errorf("%w: y_min %g >= y_max %g", ErrInvalidDomain, d.YMin, d.YMax)
	}
	return nil
}

// Mesh is a uniform rectangular mesh. X varies along columns and Y along
// rows, so X.At(i, j) == XVec[j] and Y.At(i, j) == YVec[i] for every point.
type Mesh struct {
	Domain Domain
	Nx, Ny int
	Hx, Hy float64
	X, Y   Field
	XVec   []float64
	YVec   []float64
}

// NewUniform builds a uniform mesh with nx by ny evenly spaced samples,
// endpoints inclusive.
func NewUniform(d Domain, nx, ny int) (*Mesh, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("%w: got nx=%d ny=%d", ErrInvalidResolution, nx, ny)
	}

	xv := floats.Span(make([]float64, nx), d.XMin, d.XMax)
	yv := floats.Span(make([]float64, ny), d.YMin, d.YMax)

	m := &Mesh{
		Domain: d,
		Nx:     nx,
		Ny:     ny,
		Hx:     xv[1] - xv[0],
		Hy:     yv[1] - yv[0],
		X:      NewField(ny, nx),
		Y:      NewField(ny, nx),
		XVec:   xv,
		YVec:   yv,
	}

	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			m.X.Set(i, j, xv[j])
			m.Y.Set(i, j, yv[i])
		}
	}

	return m, nil
}
