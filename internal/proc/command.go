package proc

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// Command is a typed command specification: an argv list plus named
// placeholder substitutions. Commands are never passed through a shell, so
// there is no expansion or injection surface beyond the declared
// placeholders.
type Command struct {
	Argv []string
	Vars map[string]string
}

// ParseCommand tokenizes a command string using shell-word-splitting rules
// (quotes respected, nothing executed).
func ParseCommand(raw string) (Command, error) {
	argv, err := shlex.Split(raw)
	if err != nil {
		return Command{}, fmt.Errorf("failed to tokenize command %q: %w", raw, err)
	}
	if len(argv) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}
	return Command{Argv: argv}, nil
}

// WithVar returns a copy of the command with an extra {KEY} substitution.
func (c Command) WithVar(key, value string) Command {
	vars := make(map[string]string, len(c.Vars)+1)
	for k, v := range c.Vars {
		vars[k] = v
	}
	vars[key] = value
	return Command{Argv: c.Argv, Vars: vars}
}

// Resolve substitutes every {KEY} token in the argv list and returns the
// final argument vector.
func (c Command) Resolve() []string {
	out := make([]string, len(c.Argv))
	for i, arg := range c.Argv {
		for key, value := range c.Vars {
			arg = strings.ReplaceAll(arg, "{"+key+"}", value)
		}
		out[i] = arg
	}
	return out
}

func (c Command) String() string {
	return strings.Join(c.Resolve(), " ")
}
