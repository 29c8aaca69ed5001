package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Field is a scalar field sampled on a (Ny, Nx) mesh, stored row-major:
// the value at row i, column j lives at Data[i*Nx+j].
type Field struct {
	Ny, Nx int
	Data   []float64
}

func NewField(ny, nx int) Field {
	return Field{Ny: ny, Nx: nx, Data: make([]float64, ny*nx)}
}

func (f Field) At(i, j int) float64     { return f.Data[i*f.Nx+j] }
func (f Field) Set(i, j int, v float64) { f.Data[i*f.Nx+j] = v }

// SameShape reports whether f and other sample the same (ny, nx) mesh.
func (f Field) SameShape(other Field) bool {
	return f.Ny == other.Ny && f.Nx == other.Nx && len(f.Data) == len(other.Data)
}

func (f Field) Clone() Field {
	c := Field{Ny: f.Ny, Nx: f.Nx, Data: make([]float64, len(f.Data))}
	copy(c.Data, f.Data)
	return c
}

// Row returns the i-th row as a view into the underlying data.
func (f Field) Row(i int) []float64 {
	return f.Data[i*f.Nx : (i+1)*f.Nx]
}

// Col returns a copy of the j-th column.
func (f Field) Col(j int) []float64 {
	col := make([]float64, f.Ny)
	for i := 0; i < f.Ny; i++ {
		col[i] = f.Data[i*f.Nx+j]
	}
	return col
}

// Rows returns the field as row slices sharing the underlying data.
func (f Field) Rows() [][]float64 {
	rows := make([][]float64, f.Ny)
	for i := range rows {
		rows[i] = f.Row(i)
	}
	return rows
}

func (f Field) Min() float64 {
	if len(f.Data) == 0 {
		return 0
	}
	return floats.Min(f.Data)
}

func (f Field) Max() float64 {
	if len(f.Data) == 0 {
		return 0
	}
	return floats.Max(f.Data)
}

// IsFinite reports whether every sample is a finite number.
func (f Field) IsFinite() bool {
	for _, v := range f.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
