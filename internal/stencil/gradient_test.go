package stencil

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/fdgrad/internal/expr"
	"github.com/san-kum/fdgrad/internal/grid"
)

func sampleField(t *testing.T, src string, d grid.Domain, nx, ny int) (*grid.Mesh, grid.Field) {
	t.Helper()
	m, err := grid.NewUniform(d, nx, ny)
	if err != nil {
		t.Fatalf("mesh: %v", err)
	}
	e, err := expr.Compile(src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return m, e.EvalField(m)
}

func TestBoundaryDuplication(t *testing.T) {
	m, z := sampleField(t, "sin(x)*cos(y)", grid.Domain{XMin: -2, XMax: 2, YMin: -2, YMax: 2}, 12, 9)

	dfdx, dfdy, err := Gradient(z, m.Hx, m.Hy)
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}

	nx, ny := z.Nx, z.Ny
	for i := 0; i < ny; i++ {
		if dfdx.At(i, 0) != dfdx.At(i, 1) {
			t.Errorf("row %d: left boundary %g != neighbor %g", i, dfdx.At(i, 0), dfdx.At(i, 1))
		}
		if dfdx.At(i, nx-1) != dfdx.At(i, nx-2) {
			t.Errorf("row %d: right boundary %g != neighbor %g", i, dfdx.At(i, nx-1), dfdx.At(i, nx-2))
		}
	}
	for j := 0; j < nx; j++ {
		if dfdy.At(0, j) != dfdy.At(1, j) {
			t.Errorf("col %d: bottom boundary %g != neighbor %g", j, dfdy.At(0, j), dfdy.At(1, j))
		}
		if dfdy.At(ny-1, j) != dfdy.At(ny-2, j) {
			t.Errorf("col %d: top boundary %g != neighbor %g", j, dfdy.At(ny-1, j), dfdy.At(ny-2, j))
		}
	}
}

func TestShapePreserved(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {2, 5}, {5, 2}, {3, 3}, {7, 4}} {
		nx, ny := dims[0], dims[1]
		m, z := sampleField(t, "x*y", grid.Domain{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, nx, ny)

		dfdx, dfdy, err := Gradient(z, m.Hx, m.Hy)
		if err != nil {
			t.Fatalf("%dx%d: %v", ny, nx, err)
		}
		if dfdx.Ny != ny || dfdx.Nx != nx || dfdy.Ny != ny || dfdy.Nx != nx {
			t.Errorf("%dx%d: output shapes %dx%d and %dx%d",
				ny, nx, dfdx.Ny, dfdx.Nx, dfdy.Ny, dfdy.Nx)
		}
	}
}

func TestInteriorMatchesStencilFormula(t *testing.T) {
	m, z := sampleField(t, "x**2 + y**2", grid.Domain{XMin: -2, XMax: 2, YMin: -2, YMax: 2}, 20, 20)

	dfdx, dfdy, err := Gradient(z, m.Hx, m.Hy)
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}

	for _, pt := range [][2]int{{1, 1}, {10, 7}, {18, 18}, {5, 13}} {
		i, j := pt[0], pt[1]
		wantX := (z.At(i, j+1) - z.At(i, j-1)) / (2 * m.Hx)
		wantY := (z.At(i+1, j) - z.At(i-1, j)) / (2 * m.Hy)
		if dfdx.At(i, j) != wantX {
			t.Errorf("df/dx[%d,%d]=%v, want direct stencil %v", i, j, dfdx.At(i, j), wantX)
		}
		if dfdy.At(i, j) != wantY {
			t.Errorf("df/dy[%d,%d]=%v, want direct stencil %v", i, j, dfdy.At(i, j), wantY)
		}
	}
}

// The central difference of a quadratic is exact up to rounding.
func TestQuadraticInteriorExact(t *testing.T) {
	m, z := sampleField(t, "x**2 + y**2", grid.Domain{XMin: -2, XMax: 2, YMin: -2, YMax: 2}, 20, 20)

	dfdx, dfdy, err := Gradient(z, m.Hx, m.Hy)
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}

	for i := 1; i < z.Ny-1; i++ {
		for j := 1; j < z.Nx-1; j++ {
			if got, want := dfdx.At(i, j), 2*m.XVec[j]; math.Abs(got-want) > 1e-9 {
				t.Fatalf("df/dx[%d,%d]=%.12f, want %.12f", i, j, got, want)
			}
			if got, want := dfdy.At(i, j), 2*m.YVec[i]; math.Abs(got-want) > 1e-9 {
				t.Fatalf("df/dy[%d,%d]=%.12f, want %.12f", i, j, got, want)
			}
		}
	}
}

func TestSinCosConvergence(t *testing.T) {
	m, z := sampleField(t, "sin(x)*cos(y)", grid.Domain{XMin: -2, XMax: 2, YMin: -2, YMax: 2}, 100, 100)

	dfdx, dfdy, err := Gradient(z, m.Hx, m.Hy)
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}

	var maxErrX, maxErrY float64
	for i := 1; i < z.Ny-1; i++ {
		for j := 1; j < z.Nx-1; j++ {
			x, y := m.XVec[j], m.YVec[i]
			maxErrX = math.Max(maxErrX, math.Abs(dfdx.At(i, j)-math.Cos(x)*math.Cos(y)))
			maxErrY = math.Max(maxErrY, math.Abs(dfdy.At(i, j)+math.Sin(x)*math.Sin(y)))
		}
	}

	if maxErrX >= 1e-2 {
		t.Errorf("interior max df/dx error %.3e, want < 1e-2", maxErrX)
	}
	if maxErrY >= 1e-2 {
		t.Errorf("interior max df/dy error %.3e, want < 1e-2", maxErrY)
	}
}

func TestTwoPointFallback(t *testing.T) {
	m, z := sampleField(t, "x + 2*y", grid.Domain{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, 2, 2)

	dfdx, dfdy, err := Gradient(z, m.Hx, m.Hy)
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}

	for i := 0; i < 2; i++ {
		want := (z.At(i, 1) - z.At(i, 0)) / m.Hx
		if dfdx.At(i, 0) != want || dfdx.At(i, 1) != want {
			t.Errorf("row %d: df/dx=(%g,%g), want both %g", i, dfdx.At(i, 0), dfdx.At(i, 1), want)
		}
	}
	for j := 0; j < 2; j++ {
		want := (z.At(1, j) - z.At(0, j)) / m.Hy
		if dfdy.At(0, j) != want || dfdy.At(1, j) != want {
			t.Errorf("col %d: df/dy=(%g,%g), want both %g", j, dfdy.At(0, j), dfdy.At(1, j), want)
		}
	}

	// Linear field: the two-point estimate is exact.
	if math.Abs(dfdx.At(0, 0)-1) > 1e-12 || math.Abs(dfdy.At(0, 0)-2) > 1e-12 {
		t.Errorf("linear field: got df/dx=%g df/dy=%g, want 1 and 2", dfdx.At(0, 0), dfdy.At(0, 0))
	}
}

func TestShapeMismatch(t *testing.T) {
	z := grid.NewField(4, 4)
	z.Data = z.Data[:10] // corrupt: length no longer ny*nx

	if _, _, err := Gradient(z, 0.1, 0.1); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("corrupt field: got %v", err)
	}

	ok := grid.NewField(4, 4)
	if _, _, err := Gradient(ok, 0, 0.1); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("zero spacing: got %v", err)
	}
	if _, _, err := Gradient(ok, 0.1, math.Inf(1)); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("inf spacing: got %v", err)
	}

	tiny := grid.NewField(1, 5)
	if _, _, err := Gradient(tiny, 0.1, 0.1); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("1-row field: got %v", err)
	}
}
