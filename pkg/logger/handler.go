package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// textHandler writes one line per record:
//
//	LEVEL message key=value key="quoted value"
//
// Attributes bound with WithAttrs come before the record's own.
type textHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	source bool
	styles map[slog.Level]lipgloss.Style
	bound  string
	groups []string
}

func newTextHandler(w io.Writer, level slog.Leveler, source, colored bool) *textHandler {
	h := &textHandler{
		mu:     &sync.Mutex{},
		w:      w,
		level:  level,
		source: source,
	}
	if colored {
		h.styles = levelStyles(lipgloss.NewRenderer(w))
	}
	return h
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.label(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.bound)

	prefix := groupPrefix(h.groups)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, prefix, a)
		return true
	})

	if h.source && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		appendAttr(&b, "", slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)))
	}

	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var b strings.Builder
	b.WriteString(h.bound)
	prefix := groupPrefix(h.groups)
	for _, a := range attrs {
		appendAttr(&b, prefix, a)
	}

	c := *h
	c.bound = b.String()
	return &c
}

func (h *textHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.groups = append(append([]string{}, h.groups...), name)
	return &c
}

func (h *textHandler) label(level slog.Level) string {
	name := levelName(level)
	if h.styles == nil {
		return name
	}
	return styleFor(h.styles, level).Render(name)
}

func groupPrefix(groups []string) string {
	if len(groups) == 0 {
		return ""
	}
	return strings.Join(groups, ".") + "."
}

// appendAttr writes " key=value", flattening groups into dotted keys and
// skipping empty attributes.
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(a.Value.String()))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

func levelStyles(r *lipgloss.Renderer) map[slog.Level]lipgloss.Style {
	return map[slog.Level]lipgloss.Style{
		levelTrace:      r.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		slog.LevelDebug: r.NewStyle().Foreground(lipgloss.Color("#666666")),
		slog.LevelInfo:  r.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		slog.LevelWarn:  r.NewStyle().Foreground(lipgloss.Color("#FFD166")),
		slog.LevelError: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		levelCritical:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#FF6B6B")),
	}
}

// styleFor picks the style of the nearest named level at or below level.
func styleFor(styles map[slog.Level]lipgloss.Style, level slog.Level) lipgloss.Style {
	for _, l := range []slog.Level{levelCritical, slog.LevelError, slog.LevelWarn, slog.LevelInfo, slog.LevelDebug} {
		if level >= l {
			return styles[l]
		}
	}
	return styles[levelTrace]
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
