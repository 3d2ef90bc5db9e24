package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/shuldan/clikit/pkg/contracts"
)

const (
	DefaultWidth = 80
	DefaultFill  = "•"

	minBoxSize = 5
)

// Printer writes severity tagged lines to a pair of streams. Every method
// returns the receiver so calls can be chained.
type Printer struct {
	terminal contracts.Terminal
	logger   contracts.Logger
	stdout   io.Writer
	stderr   io.Writer
	width    int
	fill     string
	boxed    bool
	color    bool
	out      glyphs
	err      glyphs
}

func (p *Printer) Terminal() contracts.Terminal {
	return p.terminal
}

func (p *Printer) Ln(lines ...string) *Printer {
	for _, line := range lines {
		p.println(p.stdout, line)
	}
	return p
}

func (p *Printer) Log(msg ...string) *Printer {
	return p.Ln(" - " + text(msg, "log"))
}

func (p *Printer) Info(msg ...string) *Printer {
	return p.Ln(p.out.info + " " + text(msg, "info"))
}

func (p *Printer) Warn(msg ...string) *Printer {
	return p.Ln(p.out.warn + " " + text(msg, ":S"))
}

// Error writes to the error stream.
func (p *Printer) Error(msg ...string) *Printer {
	p.println(p.stderr, p.err.error+" ERROR: "+text(msg, ":("))
	return p
}

func (p *Printer) Debug(msg ...string) *Printer {
	return p.Ln(p.out.debug + " " + text(msg, "here!"))
}

func (p *Printer) Done(msg ...string) *Printer {
	return p.Ln(strings.TrimRight(p.out.done+" DONE "+strings.Join(msg, " "), " "))
}

// Hr draws a rule of the fill glyph across the resolved width.
func (p *Printer) Hr(opts ...RuleOption) *Printer {
	r := p.rule(opts)
	return p.Ln(repeatToWidth(r.fill, r.size))
}

// Header frames title between two rules, or draws a Box when the printer
// was built with boxed headers.
func (p *Printer) Header(title string, opts ...RuleOption) *Printer {
	if p.boxed {
		return p.Box(title, opts...)
	}
	r := p.rule(opts)
	rule := repeatToWidth(r.fill, r.size)
	return p.Ln(rule, r.fill+" "+title, rule)
}

// Box draws a three line frame whose lines are exactly size cells wide.
// Titles longer than size-4 cells are cut and end with an ellipsis.
func (p *Printer) Box(title string, opts ...RuleOption) *Printer {
	r := p.rule(opts)
	size := max(r.size, minBoxSize)
	inner := size - 4

	title = ansi.Truncate(strings.ReplaceAll(title, "\n", " "), inner, "…")
	padding := max(inner-lipgloss.Width(title), 0)

	return p.Ln(
		"╭"+strings.Repeat("─", size-2)+"╮",
		"│ "+title+strings.Repeat(" ", padding)+" │",
		"╰"+strings.Repeat("─", size-2)+"╯",
	)
}

func (p *Printer) List(items ...string) *Printer {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, " • "+item)
	}
	return p.Ln(lines...)
}

// Write emits text as is, without a trailing newline.
func (p *Printer) Write(text string) *Printer {
	_, _ = io.WriteString(p.stdout, text)
	return p
}

// Clear asks the terminal to clear the screen. Failures are logged and
// otherwise ignored.
func (p *Printer) Clear() *Printer {
	if err := p.terminal.Clear(); err != nil {
		p.logger.Debug("Screen clear failed", "error", err)
	}
	return p
}

// Spawn runs cmd through the terminal and streams its stdout into the
// printer's output stream.
func (p *Printer) Spawn(ctx context.Context, cmd string, args ...string) error {
	return p.terminal.Spawn(ctx, p.stdout, cmd, args...)
}

// Width is the width rules and boxes use when no size is given: the
// terminal's, or the default width when the terminal cannot report one.
func (p *Printer) Width() int {
	w, err := p.terminal.Width()
	if err != nil || w <= 0 {
		if err != nil {
			p.logger.Debug("Terminal width unavailable", "error", err, "fallback", p.width)
		}
		return p.width
	}
	return w
}

func (p *Printer) rule(opts []RuleOption) ruleOptions {
	r := ruleOptions{fill: p.fill}
	for _, opt := range opts {
		opt(&r)
	}
	if r.size <= 0 {
		r.size = p.Width()
	}
	return r
}

func (p *Printer) println(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, line)
}

func text(msg []string, fallback string) string {
	if s := strings.Join(msg, " "); s != "" {
		return s
	}
	return fallback
}

// repeatToWidth repeats fill as many times as fits in size cells.
func repeatToWidth(fill string, size int) string {
	cells := lipgloss.Width(fill)
	if cells <= 0 || size <= 0 {
		return ""
	}
	return strings.Repeat(fill, size/cells)
}
