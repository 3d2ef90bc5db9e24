package cli

import (
	"sort"
	"sync"

	"github.com/shuldan/clikit/pkg/contracts"
)

// Names of the hook slots. Register accepts them as aliases for Single,
// Default, Start and End, so they never become user commands.
const (
	Command = "@command"
	Default = "@default"
	Start   = "@start"
	End     = "@end"
)

// Handler runs a command. Hooks receive the command name followed by its
// arguments; commands receive only their arguments.
type Handler func(ctx Context, args []string) error

type command struct {
	name        string
	description string
	group       string
	handler     Handler
}

type CommandOption func(*command)

func WithDescription(description string) CommandOption {
	return func(c *command) {
		c.description = description
	}
}

func WithGroup(group string) CommandOption {
	return func(c *command) {
		if group != "" {
			c.group = group
		}
	}
}

// Registry collects handlers before an App is built. It is either in single
// mode, holding one handler for every invocation, or in named mode with user
// commands and optional default, start and end hooks.
type Registry struct {
	mutex    sync.RWMutex
	single   Handler
	commands map[string]command
	hooks    map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]command),
		hooks:    make(map[string]Handler),
	}
}

// Register binds h to name. The reserved names Command, Default, Start and
// End fill their slot and accept no options.
func (r *Registry) Register(name string, h Handler, opts ...CommandOption) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if name == "" {
		return ErrCommandRegistration.WithDetail("command", name).WithDetail("reason", "empty name")
	}
	if h == nil {
		return ErrCommandRegistration.WithDetail("command", name).WithDetail("reason", "nil handler")
	}

	switch name {
	case Command, Default, Start, End:
		if len(opts) > 0 {
			return ErrCommandRegistration.WithDetail("command", name).WithDetail("reason", "hooks take no options")
		}
	}

	switch name {
	case Command:
		if r.single != nil {
			return ErrCommandRegistration.WithDetail("command", name).WithDetail("reason", "already registered")
		}
		r.single = h
		return nil
	case Default, Start, End:
		if _, exists := r.hooks[name]; exists {
			return ErrCommandRegistration.WithDetail("command", name).WithDetail("reason", "already registered")
		}
		r.hooks[name] = h
		return nil
	}

	if _, exists := r.commands[name]; exists {
		return ErrCommandRegistration.WithDetail("command", name).WithDetail("reason", "already registered")
	}

	cmd := command{name: name, group: contracts.DefaultCliGroup, handler: h}
	for _, opt := range opts {
		opt(&cmd)
	}
	r.commands[name] = cmd

	return nil
}

// Single sets the handler that receives every invocation.
func (r *Registry) Single(h Handler) *Registry {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.single = h
	return r
}

// Default sets the hook run when no command name is given.
func (r *Registry) Default(h Handler) *Registry {
	return r.setHook(Default, h)
}

// Start sets the hook run before every matched command.
func (r *Registry) Start(h Handler) *Registry {
	return r.setHook(Start, h)
}

// End sets the hook run after every matched command.
func (r *Registry) End(h Handler) *Registry {
	return r.setHook(End, h)
}

func (r *Registry) setHook(name string, h Handler) *Registry {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if h == nil {
		delete(r.hooks, name)
	} else {
		r.hooks[name] = h
	}
	return r
}

// routes is the frozen form of a Registry an App dispatches against.
type routes struct {
	single    Handler
	commands  map[string]command
	onDefault Handler
	onStart   Handler
	onEnd     Handler
	menu      []string
}

func (r *Registry) snapshot() (routes, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if r.single != nil && (len(r.commands) > 0 || len(r.hooks) > 0) {
		return routes{}, ErrMixedRegistration
	}

	rt := routes{
		single:    r.single,
		commands:  make(map[string]command, len(r.commands)),
		onDefault: r.hooks[Default],
		onStart:   r.hooks[Start],
		onEnd:     r.hooks[End],
		menu:      make([]string, 0, len(r.commands)),
	}
	for name, cmd := range r.commands {
		rt.commands[name] = cmd
		rt.menu = append(rt.menu, name)
	}
	sort.Strings(rt.menu)

	return rt, nil
}

// lookup resolves a command or hook name. Hook names resolve to their slot.
func (rt routes) lookup(name string) (Handler, bool) {
	var h Handler
	switch name {
	case Command:
		h = rt.single
	case Default:
		h = rt.onDefault
	case Start:
		h = rt.onStart
	case End:
		h = rt.onEnd
	default:
		h = rt.commands[name].handler
	}
	return h, h != nil
}
