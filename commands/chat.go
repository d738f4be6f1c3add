package commands

import (
	"strings"

	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/sirupsen/logrus"
)

var ChatCommand = command.NewCommand("chat", []string{"ch"}, chatRun)

func buildPrompt(history []string, botPrefix string) string {
	var sb strings.Builder
	for _, line := range history {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(botPrefix)

	return sb.String()
}

// chatRun is one chat turn: the user line may arm a picture, the text engine
// replies, and a pending picture replaces the reply.
func chatRun(cmdctx *command.CommandContext) error {
	if cmdctx.Args == "" {
		_, err := cmdctx.TryReply("**Please specify a message!**")
		return err
	}

	e := cmdctx.Executor
	persona := e.Config.Get().Persona

	input := e.Session.InputModifier(cmdctx.Args)
	e.Remember("You: " + input)

	if _, err := cmdctx.TryReply("%s", e.Host.Status()); err != nil {
		return err
	}

	botPrefix := e.Session.BotPrefixModifier(persona + ":")
	reply, err := e.Chat.Generate(cmdctx.Context, buildPrompt(e.History(), botPrefix))
	if err != nil {
		return err
	}

	reply = strings.TrimSpace(reply)
	if cut, _, found := strings.Cut(reply, "\nYou:"); found {
		reply = strings.TrimSpace(cut)
	}

	logrus.WithField("persona", persona).Debug("Got chat reply")

	out, err := e.Session.OutputModifier(cmdctx.Context, reply)
	if err != nil {
		return err
	}

	e.Remember(persona + ": " + reply)

	_, err = cmdctx.TryReply("**%s:** %s", persona, out)
	return err
}
