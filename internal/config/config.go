package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fdgrad/internal/engine"
	"github.com/san-kum/fdgrad/internal/grid"
)

const (
	DefaultXMin = -2.0
	DefaultXMax = 2.0
	DefaultYMin = -2.0
	DefaultYMax = 2.0
	DefaultNx   = 100
	DefaultNy   = 100
)

type Config struct {
	Function   string           `yaml:"function"`
	Domain     DomainConfig     `yaml:"domain"`
	Mesh       MeshConfig       `yaml:"mesh"`
	Analytical AnalyticalConfig `yaml:"analytical"`
}

type DomainConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

type MeshConfig struct {
	Nx int `yaml:"nx"`
	Ny int `yaml:"ny"`
}

type AnalyticalConfig struct {
	Dx string `yaml:"dx"`
	Dy string `yaml:"dy"`
}

func DefaultConfig() *Config {
	return &Config{
		Function: "sin(x)*cos(y)",
		Domain: DomainConfig{
			XMin: DefaultXMin, XMax: DefaultXMax,
			YMin: DefaultYMin, YMax: DefaultYMax,
		},
		Mesh: MeshConfig{Nx: DefaultNx, Ny: DefaultNy},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Request converts the configuration into an engine request.
func (c *Config) Request() engine.Request {
	return engine.Request{
		Function: c.Function,
		Domain: grid.Domain{
			XMin: c.Domain.XMin, XMax: c.Domain.XMax,
			YMin: c.Domain.YMin, YMax: c.Domain.YMax,
		},
		Nx:           c.Mesh.Nx,
		Ny:           c.Mesh.Ny,
		AnalyticalDx: c.Analytical.Dx,
		AnalyticalDy: c.Analytical.Dy,
	}
}
