package errors

import (
	"context"

	"github.com/shuldan/clikit/pkg/contracts"
)

type DefaultExitHandlerConfig struct {
	exitCodeMap    map[string]int
	showStackTrace bool
	showDetails    bool
}

func NewDefaultExitHandlerConfig() *DefaultExitHandlerConfig {
	return &DefaultExitHandlerConfig{
		exitCodeMap: map[string]int{
			string(ErrInvalidArgument.Code): 2,
			string(ErrTimeout.Code):         ExitTimeout,
			string(ErrInterrupted.Code):     ExitInterrupted,
		},
		showStackTrace: false,
		showDetails:    true,
	}
}

func (c *DefaultExitHandlerConfig) ExitCodeMap() map[string]int {
	return c.exitCodeMap
}

func (c *DefaultExitHandlerConfig) ShowStackTrace() bool {
	return c.showStackTrace
}

func (c *DefaultExitHandlerConfig) ShowDetails() bool {
	return c.showDetails
}

func (c *DefaultExitHandlerConfig) WithExitCode(errorCode Code, status int) *DefaultExitHandlerConfig {
	c.exitCodeMap[string(errorCode)] = status
	return c
}

func (c *DefaultExitHandlerConfig) WithShowStackTrace(show bool) *DefaultExitHandlerConfig {
	c.showStackTrace = show
	return c
}

func (c *DefaultExitHandlerConfig) WithShowDetails(show bool) *DefaultExitHandlerConfig {
	c.showDetails = show
	return c
}

// DefaultExitHandler logs an error that reached the top of a command run and
// decides the status the process terminates with.
type DefaultExitHandler struct {
	config contracts.ExitHandlerConfig
	logger contracts.Logger
}

func NewDefaultExitHandler(config contracts.ExitHandlerConfig, logger contracts.Logger) *DefaultExitHandler {
	if config == nil {
		config = NewDefaultExitHandlerConfig()
	}
	return &DefaultExitHandler{
		config: config,
		logger: logger,
	}
}

// NewExitHandler is NewDefaultExitHandler with the default configuration.
func NewExitHandler(logger contracts.Logger) *DefaultExitHandler {
	return NewDefaultExitHandler(nil, logger)
}

func (h *DefaultExitHandler) Handle(_ context.Context, err error) int {
	if err == nil {
		return ExitOK
	}

	status := h.determineExitCode(err)
	h.logError(err, status)

	return status
}

func (h *DefaultExitHandler) determineExitCode(err error) int {
	for e := err; e != nil; e = Unwrap(e) {
		fe, ok := e.(*Error)
		if !ok {
			continue
		}
		if status, exists := h.config.ExitCodeMap()[string(fe.Code)]; exists {
			return status
		}
	}
	return ExitCode(err)
}

func (h *DefaultExitHandler) logError(err error, status int) {
	if h.logger == nil {
		return
	}

	logArgs := []any{
		"error", err.Error(),
		"exit_code", status,
	}

	var fe *Error
	if As(err, &fe) {
		logArgs = append(logArgs, "error_code", string(fe.Code))
		if h.config.ShowDetails() && len(fe.Details) > 0 {
			logArgs = append(logArgs, "details", fe.Details)
		}
		if h.config.ShowStackTrace() {
			logArgs = append(logArgs, "stack_trace", fe.Stack)
		}
	}

	switch status {
	case ExitInterrupted:
		h.logger.Warn("Command interrupted", logArgs...)
	default:
		h.logger.Error("Command failed", logArgs...)
	}
}
