package errors

import (
	"bytes"
	"fmt"
	"runtime"
	"text/template"
	"time"
)

type Code string

func (c Code) New(msg string) *Error {
	return &Error{
		Code:      c,
		Message:   msg,
		Details:   make(map[string]interface{}),
		Stack:     getStack(),
		Timestamp: time.Now(),
	}
}

func WithPrefix(prefix string) func() Code {
	counter := int64(0)
	return func() Code {
		counter++
		return Code(fmt.Sprintf("%s_%04d", prefix, counter))
	}
}

// Error is a coded error whose Message is a text/template rendered against
// Details. Catalogue errors are shared values, so WithDetail, WithCause and
// WithExitCode return a copy and leave the receiver untouched.
type Error struct {
	Code      Code                   `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     error                  `json:"-"`
	Stack     string                 `json:"-"`
	Timestamp time.Time              `json:"timestamp"`
	exitCode  int
}

func (e *Error) Error() string {
	msg := e.render()
	if msg == "" {
		return ""
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Text is the rendered message without the code prefix and cause suffix.
func (e *Error) Text() string {
	return e.render()
}

func (e *Error) render() (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = e.Message
		}
	}()

	t, err := template.New("error").Option("missingkey=zero").Parse(e.Message)
	if err != nil {
		return e.Message
	}

	var output bytes.Buffer
	if err = t.Execute(&output, e.Details); err != nil {
		return e.Message
	}

	return output.String()
}

func (e *Error) WithCause(err error) *Error {
	c := e.clone()
	c.Cause = err
	return c
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	c := e.clone()
	c.Details[key] = value
	return c
}

// WithExitCode attaches the process status the error should terminate with.
func (e *Error) WithExitCode(code int) *Error {
	c := e.clone()
	c.exitCode = code
	return c
}

func (e *Error) ExitCode() int {
	return e.exitCode
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.Code == t.Code
}

func (e *Error) clone() *Error {
	details := make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}

	return &Error{
		Code:      e.Code,
		Message:   e.Message,
		Details:   details,
		Cause:     e.Cause,
		Stack:     getStack(),
		Timestamp: time.Now(),
		exitCode:  e.exitCode,
	}
}

func getStack() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
