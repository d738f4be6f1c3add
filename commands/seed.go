package commands

import (
	"strconv"

	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
)

var SeedCommand = command.NewCommand("seed", []string{"sd"}, seedRun)

func seedRun(cmdctx *command.CommandContext) error {
	if cmdctx.Args == "" {
		_, err := cmdctx.TryReply("**Current seed:** %d (-1 is random)", cmdctx.Executor.Config.Get().Seed)
		return err
	}

	seed, err := strconv.Atoi(cmdctx.Args)
	if err != nil {
		return err
	}

	if seed < -1 {
		seed = -1
	}

	cmdctx.Executor.Config.Update(func(c *config.Config) {
		c.Seed = seed
	})

	_, err = cmdctx.TryReply("**Seed set to:** %d", seed)
	return err
}
