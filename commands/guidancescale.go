package commands

import (
	"math"
	"strconv"

	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
)

var GuidanceScaleCommand = command.NewCommand("guidancescale", []string{"gs", "cfg"}, guidanceScaleRun)

func guidanceScaleRun(cmdctx *command.CommandContext) error {
	if cmdctx.Args == "" {
		_, err := cmdctx.TryReply("**Current guidance scale:** %g", cmdctx.Executor.Config.Get().CfgScale)
		return err
	}

	f, err := strconv.ParseFloat(cmdctx.Args, 64)
	if err != nil {
		return err
	}

	f = math.Min(math.Max(f, 1), 30)

	cmdctx.Executor.Config.Update(func(c *config.Config) {
		c.CfgScale = f
	})

	_, err = cmdctx.TryReply("**Guidance scale set to:** %g", f)
	return err
}
