package contracts

import "context"

// ExitHandler turns an error that escaped a command into a process status.
type ExitHandler interface {
	Handle(ctx context.Context, err error) int
}

type ExitHandlerConfig interface {
	ExitCodeMap() map[string]int
	ShowStackTrace() bool
	ShowDetails() bool
}
