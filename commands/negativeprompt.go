package commands

import (
	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
	"github.com/ayunami2000/sdpictures/utils"
)

var NegativePromptCommand = command.NewCommand("negativeprompt", []string{"np"}, negativePromptCommandRun)

func negativePromptCommandRun(cmdctx *command.CommandContext) error {
	if cmdctx.Args == "" {
		_, err := cmdctx.TryReply("**Current negative prompt:** %s", utils.StringOrNone(cmdctx.Executor.Config.Get().NegativePrompt))
		return err
	}

	negativePrompt := utils.TruncateText(cmdctx.Args, 512)
	cmdctx.Executor.Config.Update(func(c *config.Config) {
		c.NegativePrompt = negativePrompt
	})

	_, err := cmdctx.TryReply("**Negative prompt set to:** %s", negativePrompt)
	return err
}
