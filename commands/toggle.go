package commands

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
)

var ErrInvalidToggle = errors.New("invalid value, expected on or off")

var RestoreFacesCommand = newToggleCommand("restorefaces", []string{"rf"}, "Restore faces",
	func(c *config.Config) *bool { return &c.RestoreFaces })
var SaveImagesCommand = newToggleCommand("saveimages", []string{"si"}, "Save images",
	func(c *config.Config) *bool { return &c.SaveImages })
var FilterCommand = newToggleCommand("filter", []string{"fc"}, "Filter conversational words",
	func(c *config.Config) *bool { return &c.FilterConversational })

func parseToggle(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, ErrInvalidToggle
	}

	return b, nil
}

func newToggleCommand(name string, aliases []string, label string, field func(*config.Config) *bool) *command.Command {
	return command.NewCommand(name, aliases, func(cmdctx *command.CommandContext) error {
		if cmdctx.Args == "" {
			cfg := cmdctx.Executor.Config.Get()
			_, err := cmdctx.TryReply("**%s:** %t", label, *field(&cfg))
			return err
		}

		on, err := parseToggle(cmdctx.Args)
		if err != nil {
			return err
		}

		cmdctx.Executor.Config.Update(func(c *config.Config) {
			*field(c) = on
		})

		_, err = cmdctx.TryReply("**%s set to:** %t", label, on)
		return err
	})
}
