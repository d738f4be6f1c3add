package commands

import (
	"math"
	"strconv"

	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
)

var InferenceStepsCommand = command.NewCommand("inferencesteps", []string{"is", "steps"}, inferenceStepsRun)

func inferenceStepsRun(cmdctx *command.CommandContext) error {
	if cmdctx.Args == "" {
		_, err := cmdctx.TryReply("**Current inference steps:** %d", cmdctx.Executor.Config.Get().Steps)
		return err
	}

	i, err := strconv.ParseUint(cmdctx.Args, 10, 64)
	if err != nil {
		return err
	}

	steps := uint(math.Min(math.Max(float64(i), 1), 150))
	cmdctx.Executor.Config.Update(func(c *config.Config) {
		c.Steps = steps
	})

	_, err = cmdctx.TryReply("**Inference steps set to:** %d", steps)
	return err
}
