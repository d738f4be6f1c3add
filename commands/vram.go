package commands

import (
	"strings"

	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/vram"
)

var VRAMCommand = command.NewCommand("vram", []string{"vr"}, vramCommandRun)

func vramCommandRun(cmdctx *command.CommandContext) error {
	args := strings.ToLower(cmdctx.Args)

	switch args {
	case "":
		_, err := cmdctx.TryReply(`**VRAM management:** %t
Usage: on, off or one of %s, %s, %s, %s`, cmdctx.Executor.Config.Get().ManageVRAM,
			vram.ActionLoadImageModel, vram.ActionLoadTextModel, vram.ActionActivate, vram.ActionDeactivate)
		return err
	case "on", "off":
		on := args == "on"
		if err := cmdctx.Executor.Session.SetManageVRAM(cmdctx.Context, on); err != nil {
			return err
		}

		_, err := cmdctx.TryReply("**VRAM management set to:** %t", on)
		return err
	}

	action, err := vram.ParseAction(args)
	if err != nil {
		return err
	}

	if err := cmdctx.Executor.VRAM.Do(cmdctx.Context, action); err != nil {
		return err
	}

	_, err = cmdctx.TryReply("**VRAM given priority:** %s", action)
	return err
}
