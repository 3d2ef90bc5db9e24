package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type glyphs struct {
	info  string
	warn  string
	error string
	debug string
	done  string
}

func plainGlyphs() glyphs {
	return glyphs{
		info:  "🛈",
		warn:  "⚡",
		error: "💔",
		debug: "🐛",
		done:  "✔",
	}
}

// styledGlyphs colours the glyphs for w. The renderer inspects w itself, so
// writers that are not terminals get the plain glyphs back.
func styledGlyphs(w io.Writer) glyphs {
	r := lipgloss.NewRenderer(w)
	g := plainGlyphs()

	return glyphs{
		info:  r.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Render(g.info),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#FFD166")).Render(g.warn),
		error: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).Render(g.error),
		debug: r.NewStyle().Foreground(lipgloss.Color("#666666")).Render(g.debug),
		done:  r.NewStyle().Foreground(lipgloss.Color("#98FB98")).Render(g.done),
	}
}
