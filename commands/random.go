package commands

import (
	"strconv"

	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/utils"
	"github.com/tjarratt/babble"
)

var RandomCommand = command.NewCommand("random", []string{"rand", "randomrender", "rr"}, randomCommandRun)

// randomCommandRun draws a picture of random dictionary words.
func randomCommandRun(cmdctx *command.CommandContext) error {
	babbler := babble.NewBabbler()
	babbler.Separator = ", "

	if cmdctx.Args == "" {
		babbler.Count = 10
	} else {
		i, err := strconv.Atoi(cmdctx.Args)
		if err != nil {
			return err
		}

		if i < 1 {
			i = 1
		} else if i > 100 {
			i = 100
		}
		babbler.Count = i
	}

	description := utils.TruncateText(babbler.Babble(), 512)
	if _, err := cmdctx.TryReply("**Drawing:** %s", description); err != nil {
		return err
	}

	out, err := cmdctx.Executor.Generator.Generate(cmdctx.Context, description)
	if err != nil {
		return err
	}

	_, err = cmdctx.TryReply("%s", out)
	return err
}
