package output

import (
	"os"

	"github.com/shuldan/clikit/pkg/contracts"
	"github.com/shuldan/clikit/pkg/logger"
	"github.com/shuldan/clikit/pkg/terminal"
)

// New builds a printer on t. A nil terminal means the default shell.
func New(t contracts.Terminal, opts ...Option) *Printer {
	if t == nil {
		t = terminal.New()
	}

	p := &Printer{
		terminal: t,
		logger:   logger.NewNop(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		width:    DefaultWidth,
		fill:     DefaultFill,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.out, p.err = plainGlyphs(), plainGlyphs()
	if p.color {
		p.out, p.err = styledGlyphs(p.stdout), styledGlyphs(p.stderr)
	}

	return p
}
