package engine

import (
	"bytes"
	"math"
	"strconv"

	"github.com/san-kum/fdgrad/internal/grid"
	"github.com/san-kum/fdgrad/internal/validate"
)

// Values is a 1D array that marshals non-finite entries as JSON null
// instead of producing invalid output.
type Values []float64

func (v Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		appendJSONFloat(&buf, f)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Rows is a 2D array with the same null fallback for NaN and Inf.
type Rows [][]float64

func (r Rows) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := Values(row).MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func appendJSONFloat(buf *bytes.Buffer, f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		buf.WriteString("null")
		return
	}
	buf.Write(strconv.AppendFloat(nil, f, 'g', -1, 64))
}

// Float is a scalar with the same null fallback, used for statistics that
// may inherit NaN from a degenerate field.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	appendJSONFloat(&buf, float64(f))
	return buf.Bytes(), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// MeshInfo describes the resolved mesh of a result.
type MeshInfo struct {
	Nx int     `json:"nx"`
	Ny int     `json:"ny"`
	Hx float64 `json:"hx"`
	Hy float64 `json:"hy"`
}

// FieldData carries the coordinate and value arrays plus the 1D axis
// vectors used for contour axes. The rows are views into the same backing
// arrays as the Field values on Result.
type FieldData struct {
	X       Rows   `json:"X"`
	Y       Rows   `json:"Y"`
	Z       Rows   `json:"Z"`
	DfDx    Rows   `json:"df_dx"`
	DfDy    Rows   `json:"df_dy"`
	XVector Values `json:"x_vector"`
	YVector Values `json:"y_vector"`
}

// Stats holds extrema of the field and its derivatives.
type Stats struct {
	FMin    Float `json:"f_min"`
	FMax    Float `json:"f_max"`
	DfDxMin Float `json:"df_dx_min"`
	DfDxMax Float `json:"df_dx_max"`
	DfDyMin Float `json:"df_dy_min"`
	DfDyMax Float `json:"df_dy_max"`
}

// Result is the complete bundle for one computed request. It is created
// fresh per request and shares no state with other results.
type Result struct {
	Function  string      `json:"function_expr"`
	Domain    grid.Domain `json:"domain"`
	Mesh      MeshInfo    `json:"mesh"`
	FieldData FieldData   `json:"field_data"`
	Stats     Stats       `json:"stats"`

	// Validation is present only when both analytical expressions were
	// supplied and evaluated without error.
	Validation *validate.Report `json:"validation,omitempty"`

	// ValidationError records why validation was skipped, when it was.
	ValidationError string `json:"validation_error,omitempty"`

	// Degenerate flags NaN or Inf anywhere in the output arrays. Those
	// entries serialize as null; callers decide whether to reject.
	Degenerate bool `json:"degenerate,omitempty"`

	// Raw fields for in-process consumers (rendering, storage).
	X    grid.Field `json:"-"`
	Y    grid.Field `json:"-"`
	Z    grid.Field `json:"-"`
	DfDx grid.Field `json:"-"`
	DfDy grid.Field `json:"-"`
}
