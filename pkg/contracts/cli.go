package contracts

const (
	DefaultCliGroup = "general"
	SystemCliGroup  = "system"
)

// CliMenu is the read side of a dispatcher that help renderers depend on.
type CliMenu interface {
	Menu() []string
	Describe(name string) (description string, group string, ok bool)
}
