package commands

import (
	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
)

var ModeCommand = command.NewCommand("mode", []string{"md"}, modeCommandRun)

func modeCommandRun(cmdctx *command.CommandContext) error {
	s := cmdctx.Executor.Session

	if cmdctx.Args == "" {
		_, err := cmdctx.TryReply(`**Current mode:** %s
Modes: 0/%s, 1/%s, 2/%s`, s.Mode(), config.ModeManual, config.ModeInteractive, config.ModePicturebook)
		return err
	}

	mode, err := config.ParseMode(cmdctx.Args)
	if err != nil {
		return err
	}

	s.SetMode(mode)
	cmdctx.Executor.Config.Update(func(c *config.Config) {
		c.Mode = mode
	})

	_, err = cmdctx.TryReply("**Mode set to:** %s", mode)
	return err
}
