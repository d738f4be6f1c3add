package commands

import (
	"errors"
	"strings"

	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
)

var ModelCommand = command.NewCommand("model", []string{"m"}, modelCommandRun)
var ErrInvalidModel = errors.New("invalid model")

func modelCommandRun(cmdctx *command.CommandContext) error {
	sd := cmdctx.Executor.SD

	if cmdctx.Args == "" {
		options, err := sd.GetOptions(cmdctx.Context)
		if err != nil {
			return err
		}

		_, err = cmdctx.TryReply("**Current Model:** %s", options.SDModelCheckpoint)
		return err
	}

	models, err := sd.GetModels(cmdctx.Context)
	if err != nil {
		return err
	}

	model := ""
	for _, m := range models {
		if strings.EqualFold(m.Title, cmdctx.Args) || strings.EqualFold(m.ModelName, cmdctx.Args) {
			model = m.Title
			break
		}
	}

	if model == "" {
		return ErrInvalidModel
	}

	if err := sd.SetModel(cmdctx.Context, model); err != nil {
		return err
	}

	cmdctx.Executor.Config.Update(func(c *config.Config) {
		c.Model = model
	})

	_, err = cmdctx.TryReply("**Model set to:** %s", model)
	return err
}
