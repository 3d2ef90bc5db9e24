package terminal

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/shuldan/clikit/pkg/contracts"
)

var (
	_ contracts.Geometry = (*TputGeometry)(nil)
	_ contracts.Geometry = (*FdGeometry)(nil)
	_ contracts.Geometry = FallbackGeometry(nil)
	_ contracts.Geometry = FixedGeometry{}
)

// TputGeometry asks the terminfo tool for "cols" and "lines" and parses the
// first whitespace separated token of its output.
type TputGeometry struct {
	path string
}

func NewTputGeometry(path string) *TputGeometry {
	if path == "" {
		path = "tput"
	}
	return &TputGeometry{path: path}
}

func (g *TputGeometry) Width() (int, error) {
	return g.query("cols")
}

func (g *TputGeometry) Height() (int, error) {
	return g.query("lines")
}

func (g *TputGeometry) query(capability string) (int, error) {
	out, err := capture(context.Background(), defaultWaitDelay, nil, g.path, capability)
	if err != nil {
		return 0, ErrGeometry.WithDetail("capability", capability).WithCause(err)
	}
	return parseCells(out, capability)
}

func parseCells(out, capability string) (int, error) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return 0, ErrGeometry.WithDetail("capability", capability)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, ErrGeometry.WithDetail("capability", capability).WithCause(err)
	}
	return n, nil
}

// FdGeometry reads the window size of the terminal behind fd.
type FdGeometry struct {
	fd int
}

func NewFdGeometry(fd uintptr) *FdGeometry {
	return &FdGeometry{fd: int(fd)}
}

func (g *FdGeometry) Width() (int, error) {
	w, _, err := term.GetSize(g.fd)
	if err != nil {
		return 0, ErrGeometry.WithDetail("capability", "cols").WithCause(err)
	}
	return w, nil
}

func (g *FdGeometry) Height() (int, error) {
	_, h, err := term.GetSize(g.fd)
	if err != nil {
		return 0, ErrGeometry.WithDetail("capability", "lines").WithCause(err)
	}
	return h, nil
}

// FallbackGeometry returns the first positive answer among its sources.
type FallbackGeometry []contracts.Geometry

func (f FallbackGeometry) Width() (int, error) {
	return f.first("cols", contracts.Geometry.Width)
}

func (f FallbackGeometry) Height() (int, error) {
	return f.first("lines", contracts.Geometry.Height)
}

func (f FallbackGeometry) first(capability string, query func(contracts.Geometry) (int, error)) (int, error) {
	var lastErr error
	for _, g := range f {
		n, err := query(g)
		if err == nil && n > 0 {
			return n, nil
		}
		lastErr = err
	}
	return 0, ErrGeometry.WithDetail("capability", capability).WithCause(lastErr)
}

// FixedGeometry always reports the same size.
type FixedGeometry struct {
	Cols  int
	Lines int
}

func (f FixedGeometry) Width() (int, error) {
	return f.Cols, nil
}

func (f FixedGeometry) Height() (int, error) {
	return f.Lines, nil
}
