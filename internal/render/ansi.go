package render

import (
	"io"
	"strings"

	"github.com/Conceptual-Machines/rug-loom/internal/rug"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// newRenderer returns a lipgloss renderer pinned to truecolor so output does
// not depend on the terminal the server runs in
func newRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// ANSI renders grid with 24-bit foreground colors on the configured background
func ANSI(grid rug.Grid, cfg rug.Config) string {
	r := newRenderer()
	background := lipgloss.Color(rug.ResolveColor(rug.RoleBackground, cfg))

	styles := make(map[rug.ColorRole]lipgloss.Style, 5)
	styleFor := func(role rug.ColorRole) lipgloss.Style {
		if s, ok := styles[role]; ok {
			return s
		}
		s := r.NewStyle().
			Foreground(lipgloss.Color(rug.ResolveColor(role, cfg))).
			Background(background)
		styles[role] = s
		return s
	}

	lines := make([]string, 0, len(grid))
	for _, runs := range Runs(grid) {
		var b strings.Builder
		for _, run := range runs {
			b.WriteString(styleFor(run.Role).Render(run.Text))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
