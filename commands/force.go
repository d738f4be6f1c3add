package commands

import (
	"github.com/ayunami2000/sdpictures/commands/command"
)

var ForceCommand = command.NewCommand("force", []string{"f", "picture"}, forceCommandRun)
var SuppressCommand = command.NewCommand("suppress", []string{"sp", "nopicture"}, suppressCommandRun)

func forceCommandRun(cmdctx *command.CommandContext) error {
	cmdctx.Executor.Session.Force()
	_, err := cmdctx.TryReply("**The next reply will be a picture**")
	return err
}

func suppressCommandRun(cmdctx *command.CommandContext) error {
	cmdctx.Executor.Session.Suppress()
	_, err := cmdctx.TryReply("**The next reply will be text**")
	return err
}
