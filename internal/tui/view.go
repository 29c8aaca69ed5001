// Package tui provides an interactive terminal viewer for computed results.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fdgrad/internal/engine"
	"github.com/san-kum/fdgrad/internal/grid"
	"github.com/san-kum/fdgrad/internal/render"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimmed = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type pane struct {
	name  string
	field grid.Field
	min   float64
	max   float64
}

type model struct {
	res    *engine.Result
	panes  []pane
	cursor int
	width  int
	height int
}

func newModel(res *engine.Result) model {
	return model{
		res: res,
		panes: []pane{
			{"f(x,y)", res.Z, float64(res.Stats.FMin), float64(res.Stats.FMax)},
			{"df/dx", res.DfDx, float64(res.Stats.DfDxMin), float64(res.Stats.DfDxMax)},
			{"df/dy", res.DfDy, float64(res.Stats.DfDyMin), float64(res.Stats.DfDyMax)},
		},
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.cursor = (m.cursor + len(m.panes) - 1) % len(m.panes)
		case "right", "l", "tab":
			m.cursor = (m.cursor + 1) % len(m.panes)
		}
	}
	return m, nil
}

func (m model) View() string {
	p := m.panes[m.cursor]

	var b strings.Builder
	b.WriteString(cyan.Render("fdgrad"))
	b.WriteString("  ")
	b.WriteString(white.Render(m.res.Function))
	b.WriteString("  ")
	b.WriteString(dimmed.Render(fmt.Sprintf("[%g,%g]x[%g,%g] %dx%d",
		m.res.Domain.XMin, m.res.Domain.XMax,
		m.res.Domain.YMin, m.res.Domain.YMax,
		m.res.Mesh.Nx, m.res.Mesh.Ny)))
	b.WriteString("\n\n")

	for i, pn := range m.panes {
		label := " " + pn.name + " "
		if i == m.cursor {
			b.WriteString(yellow.Render("[" + pn.name + "]"))
		} else {
			b.WriteString(dimmed.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	hw := m.width - 4
	hh := m.height - 10
	if hw < 10 {
		hw = 10
	}
	if hh < 5 {
		hh = 5
	}
	b.WriteString(render.Heatmap(p.field, hw, hh))
	b.WriteString("\n\n")

	b.WriteString(dimmed.Render("range "))
	b.WriteString(white.Render(fmt.Sprintf("[%.4g, %.4g]", p.min, p.max)))
	if m.res.Degenerate {
		b.WriteString("  ")
		b.WriteString(red.Render("non-finite values present"))
	}
	if m.res.Validation != nil && m.cursor > 0 {
		metrics := m.res.Validation.DfDx
		if m.cursor == 2 {
			metrics = m.res.Validation.DfDy
		}
		b.WriteString(dimmed.Render("  max|err| "))
		b.WriteString(white.Render(fmt.Sprintf("%.3e", metrics.MaxAbs)))
		b.WriteString(dimmed.Render("  rmse "))
		b.WriteString(white.Render(fmt.Sprintf("%.3e", metrics.RMSE)))
	}
	b.WriteString("\n")
	b.WriteString(dimmed.Render("←/→ switch field   q quit"))
	b.WriteString("\n")

	return b.String()
}

// View runs the interactive viewer until the user quits.
func View(res *engine.Result) error {
	p := tea.NewProgram(newModel(res), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
