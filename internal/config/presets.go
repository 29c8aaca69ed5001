package config

import "sort"

// Preset is a named example field with known analytical derivatives.
type Preset struct {
	Name        string
	Description string
	Config      Config
}

var Presets = map[string]Preset{
	"waves": {
		Name:        "waves",
		Description: "product of trigonometric functions forming a 2D wave pattern",
		Config: Config{
			Function: "sin(x)*cos(y)",
			Domain:   DomainConfig{XMin: -2, XMax: 2, YMin: -2, YMax: 2},
			Mesh:     MeshConfig{Nx: 100, Ny: 100},
			Analytical: AnalyticalConfig{
				Dx: "cos(x)*cos(y)",
				Dy: "-sin(x)*sin(y)",
			},
		},
	},
	"paraboloid": {
		Name:        "paraboloid",
		Description: "upward-opening parabolic surface, common in optimization",
		Config: Config{
			Function: "x**2 + y**2",
			Domain:   DomainConfig{XMin: -3, XMax: 3, YMin: -3, YMax: 3},
			Mesh:     MeshConfig{Nx: 100, Ny: 100},
			Analytical: AnalyticalConfig{
				Dx: "2*x",
				Dy: "2*y",
			},
		},
	},
	"saddle": {
		Name:        "saddle",
		Description: "saddle point with opposite curvature along each axis",
		Config: Config{
			Function: "x**2 - y**2",
			Domain:   DomainConfig{XMin: -2, XMax: 2, YMin: -2, YMax: 2},
			Mesh:     MeshConfig{Nx: 100, Ny: 100},
			Analytical: AnalyticalConfig{
				Dx: "2*x",
				Dy: "-2*y",
			},
		},
	},
	"gaussian": {
		Name:        "gaussian",
		Description: "bell-shaped surface scaled by x, typical in statistics and physics",
		Config: Config{
			Function: "x*exp(-x**2 - y**2)",
			Domain:   DomainConfig{XMin: -3, XMax: 3, YMin: -3, YMax: 3},
			Mesh:     MeshConfig{Nx: 100, Ny: 100},
			Analytical: AnalyticalConfig{
				Dx: "(1 - 2*x**2)*exp(-x**2 - y**2)",
				Dy: "-2*x*y*exp(-x**2 - y**2)",
			},
		},
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []Preset {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Preset, 0, len(names))
	for _, name := range names {
		out = append(out, Presets[name])
	}
	return out
}
