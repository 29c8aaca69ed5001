package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/fdgrad/internal/expr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Function == "" {
		t.Error("default function empty")
	}
	if cfg.Mesh.Nx != DefaultNx || cfg.Mesh.Ny != DefaultNy {
		t.Errorf("default mesh %dx%d", cfg.Mesh.Nx, cfg.Mesh.Ny)
	}
	if cfg.Domain.XMin >= cfg.Domain.XMax {
		t.Error("default domain inverted")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.yaml")

	cfg := &Config{
		Function: "x*exp(-x**2 - y**2)",
		Domain:   DomainConfig{XMin: -3, XMax: 3, YMin: -1, YMax: 1},
		Mesh:     MeshConfig{Nx: 64, Ny: 32},
		Analytical: AnalyticalConfig{
			Dx: "(1 - 2*x**2)*exp(-x**2 - y**2)",
			Dy: "-2*x*y*exp(-x**2 - y**2)",
		},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRequestConversion(t *testing.T) {
	cfg := &Config{
		Function:   "x + y",
		Domain:     DomainConfig{XMin: 0, XMax: 1, YMin: 2, YMax: 3},
		Mesh:       MeshConfig{Nx: 10, Ny: 20},
		Analytical: AnalyticalConfig{Dx: "1", Dy: "1"},
	}

	req := cfg.Request()
	if req.Function != "x + y" || req.Nx != 10 || req.Ny != 20 {
		t.Errorf("request: %+v", req)
	}
	if req.Domain.YMin != 2 || req.Domain.YMax != 3 {
		t.Errorf("domain: %+v", req.Domain)
	}
	if req.AnalyticalDx != "1" || req.AnalyticalDy != "1" {
		t.Errorf("analytical: %q %q", req.AnalyticalDx, req.AnalyticalDy)
	}
}

func TestPresetLookup(t *testing.T) {
	if _, ok := GetPreset("waves"); !ok {
		t.Error("waves preset missing")
	}
	if _, ok := GetPreset("bogus"); ok {
		t.Error("bogus preset found")
	}

	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("listed %d of %d presets", len(presets), len(Presets))
	}
}

// Every preset ships expressions the evaluator accepts.
func TestPresetExpressionsCompile(t *testing.T) {
	for name, p := range Presets {
		for _, src := range []string{p.Config.Function, p.Config.Analytical.Dx, p.Config.Analytical.Dy} {
			if _, err := expr.Compile(src); err != nil {
				t.Errorf("preset %s: %v", name, err)
			}
		}
		if p.Config.Mesh.Nx < 2 || p.Config.Mesh.Ny < 2 {
			t.Errorf("preset %s: mesh %dx%d", name, p.Config.Mesh.Nx, p.Config.Mesh.Ny)
		}
	}
}
