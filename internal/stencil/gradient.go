// Package stencil computes partial derivatives of a sampled scalar field
// with second-order central finite differences on a uniform mesh.
package stencil

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/fdgrad/internal/grid"
)

// ErrShapeMismatch indicates a field whose shape cannot carry the stencil,
// or spacings inconsistent with a uniform mesh. When mesh and field come
// from the same request this never fires; it guards against misuse.
var ErrShapeMismatch = errors.New("stencil: shape mismatch between field and spacings")

// Gradient returns df/dx and df/dy for the field z sampled with spacings hx
// and hy. Interior points use the central formula
//
//	df/dx[i,j] = (z[i,j+1] - z[i,j-1]) / (2*hx)
//	df/dy[i,j] = (z[i+1,j] - z[i-1,j]) / (2*hy)
//
// Boundary rows and columns do NOT use one-sided differences: each boundary
// line copies the derivative already computed on its immediate interior
// neighbor. The first column equals the second and the last equals the
// next-to-last, and likewise for rows in y. Downstream consumers rely on
// this duplication holding exactly.
//
// An axis with only two samples has no interior, so both of its lines get
// the two-point difference (z[1]-z[0])/h instead.
func Gradient(z grid.Field, hx, hy float64) (grid.Field, grid.Field, error) {
	if z.Ny < 2 || z.Nx < 2 || len(z.Data) != z.Ny*z.Nx {
		return grid.Field{}, grid.Field{}, fmt.Errorf("%w: field is %dx%d with %d values",
			ErrShapeMismatch, z.Ny, z.Nx, len(z.Data))
	}
	if !validSpacing(hx) || !validSpacing(hy) {
		return grid.Field{}, grid.Field{}, fmt.Errorf("%w: spacings hx=%g hy=%g",
			ErrShapeMismatch, hx, hy)
	}

	ny, nx := z.Ny, z.Nx
	dfdx := grid.NewField(ny, nx)
	dfdy := grid.NewField(ny, nx)

	if nx == 2 {
		for i := 0; i < ny; i++ {
			d := (z.At(i, 1) - z.At(i, 0)) / hx
			dfdx.Set(i, 0, d)
			dfdx.Set(i, 1, d)
		}
	} else {
		for i := 0; i < ny; i++ {
			for j := 1; j < nx-1; j++ {
				dfdx.Set(i, j, (z.At(i, j+1)-z.At(i, j-1))/(2*hx))
			}
			dfdx.Set(i, 0, dfdx.At(i, 1))
			dfdx.Set(i, nx-1, dfdx.At(i, nx-2))
		}
	}

	if ny == 2 {
		for j := 0; j < nx; j++ {
			d := (z.At(1, j) - z.At(0, j)) / hy
			dfdy.Set(0, j, d)
			dfdy.Set(1, j, d)
		}
	} else {
		for i := 1; i < ny-1; i++ {
			for j := 0; j < nx; j++ {
				dfdy.Set(i, j, (z.At(i+1, j)-z.At(i-1, j))/(2*hy))
			}
		}
		for j := 0; j < nx; j++ {
			dfdy.Set(0, j, dfdy.At(1, j))
			dfdy.Set(ny-1, j, dfdy.At(ny-2, j))
		}
	}

	return dfdx, dfdy, nil
}

func validSpacing(h float64) bool {
	return h > 0 && !math.IsInf(h, 0)
}
