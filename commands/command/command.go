// Adapted from https://github.com/cutest-design/bot2/blob/main/command/command.go (my own code)
package command

import (
	"context"
	"fmt"
	"io"

	"github.com/ayunami2000/sdpictures/chatapi"
	"github.com/ayunami2000/sdpictures/config"
	"github.com/ayunami2000/sdpictures/picture"
	"github.com/ayunami2000/sdpictures/sdapi"
	"github.com/ayunami2000/sdpictures/session"
	"github.com/ayunami2000/sdpictures/vram"
)

// Services is everything a command may touch.
type Services struct {
	Config    *config.Store
	Session   *session.Session
	Host      *ConsoleHost
	SD        *sdapi.Client
	Chat      *chatapi.Client
	Generator *picture.Generator
	VRAM      *vram.Arbiter
	Out       io.Writer
}

// NewServices wires the picture session against the configured image service
// and text engine.
func NewServices(cfg *config.Store, host *ConsoleHost, out io.Writer) *Services {
	sd := sdapi.NewClient(cfg)
	chat := chatapi.NewClient(cfg)
	arbiter := vram.NewArbiter(sd, chat)
	gen := picture.NewGenerator(cfg, sd, arbiter)

	return &Services{
		Config:    cfg,
		Session:   session.New(cfg, gen, arbiter, host),
		Host:      host,
		SD:        sd,
		Chat:      chat,
		Generator: gen,
		VRAM:      arbiter,
		Out:       out,
	}
}

type CommandContext struct {
	Context  context.Context
	Executor *Executor

	CalledWithPrefix string
	CalledWithAlias  string
	Args             string
}

func (c *CommandContext) TryReply(format string, a ...any) (n int, err error) {
	return fmt.Fprintf(c.Executor.Out, format+"\n", a...)
}

type Command struct {
	Name    string
	Aliases []string
	run     func(*CommandContext) error
}

func NewCommand(name string, aliases []string, run func(*CommandContext) error) *Command {
	return &Command{
		Name:    name,
		Aliases: aliases,
		run:     run,
	}
}

func (c *Command) Run(cmdctx *CommandContext) error {
	return c.run(cmdctx)
}

func (c *Command) String() string {
	return fmt.Sprintf("{Name: %s, Aliases: %s}", c.Name, c.Aliases)
}
