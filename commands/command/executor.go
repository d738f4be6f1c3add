package command

import (
	"context"
	"errors"
	"strings"

	"github.com/ayunami2000/sdpictures/utils"
)

var ErrCommandNotFound = errors.New("command not found")

const historyLimit = 20

type Executor struct {
	*Services
	commands []*Command
	fallback string
	history  []string
}

func NewExecutor(services *Services) *Executor {
	return &Executor{Services: services}
}

func (e *Executor) GetCommandNames() (names []string) {
	for _, c := range e.commands {
		names = append(names, c.Name)
	}

	return
}

func (e *Executor) RegisterCommand(cmd *Command) {
	e.commands = append(e.commands, cmd)
}

// SetFallback names the command that receives lines without the prefix.
func (e *Executor) SetFallback(name string) {
	e.fallback = name
}

func (e *Executor) RunCommand(name string, cmdctx *CommandContext) error {
	for _, cmd := range e.commands {
		if cmd.Name == name || utils.Contains(cmd.Aliases, name) {
			return cmd.Run(cmdctx)
		}
	}

	return ErrCommandNotFound
}

// Execute runs one console line. Prefixed lines are commands, anything else
// goes to the fallback command as its arguments.
func (e *Executor) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	prefix := e.Config.Get().Prefix
	cmdctx := &CommandContext{
		Context:          ctx,
		Executor:         e,
		CalledWithPrefix: prefix,
	}

	if prefix == "" || !strings.HasPrefix(line, prefix) {
		if e.fallback == "" {
			return ErrCommandNotFound
		}

		cmdctx.CalledWithAlias = e.fallback
		cmdctx.Args = line
		return e.RunCommand(e.fallback, cmdctx)
	}

	args := strings.TrimSpace(line[len(prefix):])
	if args == "" {
		args = "?"
	}

	name, rest, _ := strings.Cut(args, " ")
	cmdctx.CalledWithAlias = strings.ToLower(name)
	cmdctx.Args = strings.TrimSpace(rest)

	return e.RunCommand(cmdctx.CalledWithAlias, cmdctx)
}

// Remember appends a transcript line, dropping the oldest past the limit.
func (e *Executor) Remember(line string) {
	e.history = append(e.history, line)
	if len(e.history) > historyLimit {
		e.history = e.history[len(e.history)-historyLimit:]
	}
}

func (e *Executor) History() []string {
	return append([]string(nil), e.history...)
}

func (e *Executor) ClearHistory() {
	e.history = nil
}
