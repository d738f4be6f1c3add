package commands

import (
	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
	"github.com/ayunami2000/sdpictures/utils"
)

var PromptCommand = command.NewCommand("prompt", []string{"p", "prefix"}, promptCommandRun)

func promptCommandRun(cmdctx *command.CommandContext) error {
	if cmdctx.Args == "" {
		_, err := cmdctx.TryReply("**Current prompt prefix:** %s", utils.StringOrNone(cmdctx.Executor.Config.Get().PromptPrefix))
		return err
	}

	prefix := utils.TruncateText(cmdctx.Args, 512)
	cmdctx.Executor.Config.Update(func(c *config.Config) {
		c.PromptPrefix = prefix
	})

	_, err := cmdctx.TryReply("**Prompt prefix set to:** %s", prefix)
	return err
}
