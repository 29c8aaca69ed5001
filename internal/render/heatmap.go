// Package render draws fields in the terminal: shaded heatmaps and
// cross-section line plots.
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fdgrad/internal/grid"
)

var (
	shadeLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	shadeMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	shadeHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dim       = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// shades runs from low to high values.
var shades = []rune{' ', '░', '░', '▒', '▒', '▓', '▓', '█'}

// Heatmap renders the field as a width x height character grid. Values are
// sampled with nearest-neighbor lookup and normalized against the field's
// own extrema; non-finite samples render as '?'.
func Heatmap(f grid.Field, width, height int) string {
	if f.Ny == 0 || f.Nx == 0 || width < 1 || height < 1 {
		return ""
	}
	if width > f.Nx {
		width = f.Nx
	}
	if height > f.Ny {
		height = f.Ny
	}

	min, max := f.Min(), f.Max()
	rng := max - min
	if rng == 0 || math.IsNaN(rng) || math.IsInf(rng, 0) {
		rng = 1
	}

	var b strings.Builder
	// Row 0 holds y_min; draw it at the bottom so y increases upward.
	for r := height - 1; r >= 0; r-- {
		i := r * (f.Ny - 1) / maxInt(height-1, 1)
		for c := 0; c < width; c++ {
			j := c * (f.Nx - 1) / maxInt(width-1, 1)
			v := f.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				b.WriteString(dim.Render("?"))
				continue
			}
			norm := (v - min) / rng
			idx := int(norm * float64(len(shades)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(shades) {
				idx = len(shades) - 1
			}
			ch := string(shades[idx])
			switch {
			case norm > 0.66:
				b.WriteString(shadeHigh.Render(ch))
			case norm > 0.33:
				b.WriteString(shadeMid.Render(ch))
			default:
				b.WriteString(shadeLow.Render(ch))
			}
		}
		if r > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
