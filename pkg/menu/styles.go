package menu

import (
	"io"

	"github.com/Qendolin/logbook/pkg/journal"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// palette holds the styles for notice lines. Prompts are never styled so
// their trailing space reaches the terminal untouched.
type palette struct {
	enabled  bool
	renderer *lipgloss.Renderer
	title    lipgloss.Style
	notice   lipgloss.Style
	invalid  lipgloss.Style
	severity map[journal.Severity]lipgloss.Style
}

// newPalette binds the styles to out's renderer. Tabs are never expanded, a
// record line must print exactly as rendered.
func newPalette(out io.Writer, enabled bool) palette {
	r := lipgloss.NewRenderer(out)
	style := func() lipgloss.Style {
		return r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	}
	return palette{
		enabled:  enabled,
		renderer: r,
		title:    style().Bold(true).Foreground(lipgloss.Color("#B4BEFE")),
		notice:   style().Foreground(lipgloss.Color("#A6ADC8")),
		invalid:  style().Foreground(lipgloss.Color("#F38BA8")),
		severity: map[journal.Severity]lipgloss.Style{
			journal.Info:    style().Foreground(lipgloss.Color("#A6E3A1")),
			journal.Warning: style().Foreground(lipgloss.Color("#F9E2AF")),
			journal.Error:   style().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		},
	}
}

// apply styles text, or returns it untouched when styling is off or the
// output cannot show colors.
func (p palette) apply(s lipgloss.Style, text string) string {
	if !p.enabled || p.renderer.ColorProfile() == termenv.Ascii {
		return text
	}
	return s.Render(text)
}

func (p palette) record(r journal.Record) string {
	return p.apply(p.severity[r.Severity()], r.Rendered())
}
