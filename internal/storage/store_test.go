package storage

import (
	"strings"
	"testing"

	"github.com/san-kum/fdgrad/internal/engine"
	"github.com/san-kum/fdgrad/internal/grid"
)

func computeResult(t *testing.T) *engine.Result {
	t.Helper()
	res, err := engine.Compute(engine.Request{
		Function:     "x**2 + y**2",
		Domain:       grid.Domain{XMin: -2, XMax: 2, YMin: -2, YMax: 2},
		Nx:           5,
		Ny:           4,
		AnalyticalDx: "2*x",
		AnalyticalDy: "2*y",
	})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return res
}

func TestSaveListLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	res := computeResult(t)
	runID, err := st.Save("paraboloid", res)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(runID, "paraboloid_") {
		t.Errorf("run id: %s", runID)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Fatalf("list: %+v", runs)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Function != res.Function {
		t.Errorf("function: %q", meta.Function)
	}
	if meta.Mesh.Nx != 5 || meta.Mesh.Ny != 4 {
		t.Errorf("mesh: %+v", meta.Mesh)
	}
	if meta.Validation == nil {
		t.Error("validation report lost")
	}
}

func TestLoadFieldsRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	res := computeResult(t)
	runID, err := st.Save("paraboloid", res)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	fs, err := st.LoadFields(runID)
	if err != nil {
		t.Fatalf("load fields: %v", err)
	}

	// Shortest round-trip formatting makes the CSV lossless for float64.
	pairs := []struct {
		name string
		got  grid.Field
		want grid.Field
	}{
		{"x", fs.X, res.X},
		{"y", fs.Y, res.Y},
		{"z", fs.Z, res.Z},
		{"df_dx", fs.DfDx, res.DfDx},
		{"df_dy", fs.DfDy, res.DfDy},
	}
	for _, p := range pairs {
		if p.got.Ny != p.want.Ny || p.got.Nx != p.want.Nx {
			t.Fatalf("%s: shape %dx%d", p.name, p.got.Ny, p.got.Nx)
		}
		for k := range p.want.Data {
			if p.got.Data[k] != p.want.Data[k] {
				t.Fatalf("%s[%d]: got %v, want %v", p.name, k, p.got.Data[k], p.want.Data[k])
			}
		}
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope_123"); err == nil {
		t.Error("expected error for unknown run")
	}
}
