package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
	"github.com/ayunami2000/sdpictures/utils"
)

var ClearCommand = command.NewCommand("clear", []string{"cl"}, clearCommandRun)
var ErrInvalidProperty = errors.New("invalid property specified")

var chgMap = map[string]string{
	"p":   "prompt",
	"np":  "negativeprompt",
	"is":  "inferencesteps",
	"gs":  "guidancescale",
	"sz":  "size",
	"sm":  "sampler",
	"sd":  "seed",
	"rf":  "restorefaces",
	"h":   "history",
	"all": "all",
}

func clearCommandRun(cmdctx *command.CommandContext) error {
	args := strings.ToLower(cmdctx.Args)
	if args == "" {
		keys := utils.ToKeys(chgMap)
		sort.Strings(keys)

		valid := []string{}
		for _, k := range keys {
			valid = append(valid, fmt.Sprintf("%s/%s", k, chgMap[k]))
		}

		return fmt.Errorf("%w, valid properties: %s", ErrInvalidProperty, strings.Join(valid, ", "))
	}

	mappedArg, exists := chgMap[args]
	if !exists {
		mappedArg = args
	}

	if mappedArg == "history" {
		cmdctx.Executor.ClearHistory()
		_, err := cmdctx.TryReply("**Successfully cleared chat history**")
		return err
	}

	if !utils.Contains(utils.ToValues(chgMap), mappedArg) {
		return ErrInvalidProperty
	}

	def := config.Default()
	cmdctx.Executor.Config.Update(func(c *config.Config) {
		switch mappedArg {
		case "prompt":
			c.PromptPrefix = def.PromptPrefix
		case "negativeprompt":
			c.NegativePrompt = def.NegativePrompt
		case "inferencesteps":
			c.Steps = def.Steps
		case "guidancescale":
			c.CfgScale = def.CfgScale
		case "size":
			c.Width = def.Width
			c.Height = def.Height
		case "sampler":
			c.SamplerName = def.SamplerName
		case "seed":
			c.Seed = def.Seed
		case "restorefaces":
			c.RestoreFaces = def.RestoreFaces
		case "all":
			c.PromptPrefix = def.PromptPrefix
			c.NegativePrompt = def.NegativePrompt
			c.Steps = def.Steps
			c.CfgScale = def.CfgScale
			c.Width = def.Width
			c.Height = def.Height
			c.SamplerName = def.SamplerName
			c.Seed = def.Seed
			c.RestoreFaces = def.RestoreFaces
		}
	})

	_, err := cmdctx.TryReply("**Successfully cleared property**")
	return err
}
