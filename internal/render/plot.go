package render

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fdgrad/internal/grid"
)

// CrossSection plots one row of the field as a line graph over x.
func CrossSection(f grid.Field, row int, caption string) string {
	if row < 0 || row >= f.Ny {
		return ""
	}
	return asciigraph.Plot(f.Row(row),
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
}

// MidSections plots the middle row of z and both derivative fields, the
// compact summary shown after a compute.
func MidSections(z, dfdx, dfdy grid.Field, yVec []float64) string {
	mid := z.Ny / 2
	y := 0.0
	if mid < len(yVec) {
		y = yVec[mid]
	}

	var b strings.Builder
	b.WriteString(CrossSection(z, mid, fmt.Sprintf("f(x, y=%.3f)", y)))
	b.WriteString("\n\n")
	b.WriteString(CrossSection(dfdx, mid, fmt.Sprintf("df/dx(x, y=%.3f)", y)))
	b.WriteString("\n\n")
	b.WriteString(CrossSection(dfdy, mid, fmt.Sprintf("df/dy(x, y=%.3f)", y)))
	return b.String()
}
