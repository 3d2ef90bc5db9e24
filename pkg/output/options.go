package output

import (
	"io"

	"github.com/shuldan/clikit/pkg/contracts"
)

type Option func(*Printer)

func WithStdout(w io.Writer) Option {
	return func(p *Printer) {
		if w != nil {
			p.stdout = w
		}
	}
}

func WithStderr(w io.Writer) Option {
	return func(p *Printer) {
		if w != nil {
			p.stderr = w
		}
	}
}

// WithWidth sets the width used when the terminal cannot report one.
func WithWidth(width int) Option {
	return func(p *Printer) {
		if width > 0 {
			p.width = width
		}
	}
}

func WithFill(fill string) Option {
	return func(p *Printer) {
		if fill != "" {
			p.fill = fill
		}
	}
}

func WithBoxedHeaders() Option {
	return func(p *Printer) {
		p.boxed = true
	}
}

func WithColor() Option {
	return func(p *Printer) {
		p.color = true
	}
}

func WithLogger(l contracts.Logger) Option {
	return func(p *Printer) {
		if l != nil {
			p.logger = l
		}
	}
}

type ruleOptions struct {
	fill string
	size int
}

// RuleOption adjusts a single Hr, Header or Box call.
type RuleOption func(*ruleOptions)

func Fill(fill string) RuleOption {
	return func(r *ruleOptions) {
		if fill != "" {
			r.fill = fill
		}
	}
}

func Size(size int) RuleOption {
	return func(r *ruleOptions) {
		r.size = size
	}
}
