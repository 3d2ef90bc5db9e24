package contracts

import (
	"context"
	"io"
)

// Geometry reports the size of the controlling terminal in cells.
type Geometry interface {
	Width() (int, error)
	Height() (int, error)
}

// Terminal is the capability surface the output helper builds on.
//
// Run blocks until the command exits and returns its captured stdout.
// Spawn streams the command's stdout into w as it arrives and returns once
// the stream is closed and the process has exited.
type Terminal interface {
	Geometry
	Clear() error
	Run(ctx context.Context, cmd string, args ...string) (string, error)
	Spawn(ctx context.Context, w io.Writer, cmd string, args ...string) error
}
