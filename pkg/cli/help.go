package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/shuldan/clikit/pkg/contracts"
)

const defaultHelpTemplate = `Usage: {{ .Name }} <command> [arguments]
{{ range .Groups }}
{{ .Name }}:{{ range .Commands }}
  {{ .PaddedName }}  {{ .Description }}{{ end }}
{{ end }}`

type helpGroup struct {
	Name     string
	Commands []PrintableCommand
}

type PrintableCommand struct {
	PaddedName  string
	Description string
}

type helpConfig struct {
	template string
}

type HelpOption func(*helpConfig)

// WithHelpTemplate replaces the text/template used for the command list.
// The template receives .Name and .Groups, each group having .Name and
// .Commands.
func WithHelpTemplate(tmpl string) HelpOption {
	return func(c *helpConfig) {
		if tmpl != "" {
			c.template = tmpl
		}
	}
}

// HelpHandler lists the menu grouped by command group. Given a command name
// as its first argument it describes only that command.
func HelpHandler(opts ...HelpOption) Handler {
	cfg := helpConfig{template: defaultHelpTemplate}
	for _, opt := range opts {
		opt(&cfg)
	}

	tmpl, parseErr := template.New("help").Parse(cfg.template)

	return func(ctx Context, args []string) error {
		if parseErr != nil {
			return ErrHelpTemplate.WithCause(parseErr)
		}

		if len(args) > 0 && args[0] != "" {
			return showCommandHelp(ctx, args[0])
		}

		var out strings.Builder
		data := struct {
			Name   string
			Groups []helpGroup
		}{
			Name:   ctx.Name(),
			Groups: groupMenu(ctx),
		}
		if err := tmpl.Execute(&out, data); err != nil {
			return ErrHelpTemplate.WithCause(err)
		}

		ctx.Print().Write(out.String())
		return nil
	}
}

func showCommandHelp(ctx Context, name string) error {
	description, group, ok := ctx.Describe(name)
	if !ok {
		return ErrUnknownCommand.WithDetail("command", name)
	}

	ctx.Print().Ln(fmt.Sprintf("%s - %s", name, description), "Group: "+group)
	return nil
}

func groupMenu(menu contracts.CliMenu) []helpGroup {
	byGroup := make(map[string][]string)
	for _, name := range menu.Menu() {
		_, group, _ := menu.Describe(name)
		byGroup[group] = append(byGroup[group], name)
	}

	groups := make([]helpGroup, 0, len(byGroup))
	for group, names := range byGroup {
		longest := 0
		for _, name := range names {
			longest = max(longest, len(name))
		}

		commands := make([]PrintableCommand, 0, len(names))
		for _, name := range names {
			description, _, _ := menu.Describe(name)
			commands = append(commands, PrintableCommand{
				PaddedName:  fmt.Sprintf("%-*s", longest, name),
				Description: description,
			})
		}

		groups = append(groups, helpGroup{Name: group, Commands: commands})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})

	return groups
}
