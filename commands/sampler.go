package commands

import (
	"errors"
	"strings"

	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
	"github.com/ayunami2000/sdpictures/sdapi"
)

var SamplerCommand = command.NewCommand("sampler", []string{"sm"}, samplerCommandRun)
var ErrInvalidSampler = errors.New("invalid sampler")

func samplerNames(samplers []sdapi.Sampler) (names []string) {
	for _, s := range samplers {
		names = append(names, s.Name)
	}

	return
}

// findSampler matches a sampler by name or alias, ignoring case.
func findSampler(samplers []sdapi.Sampler, name string) string {
	for _, s := range samplers {
		if strings.EqualFold(s.Name, name) {
			return s.Name
		}

		for _, alias := range s.Aliases {
			if strings.EqualFold(alias, name) {
				return s.Name
			}
		}
	}

	return ""
}

func samplerCommandRun(cmdctx *command.CommandContext) error {
	samplers, err := cmdctx.Executor.SD.GetSamplers(cmdctx.Context)
	if err != nil {
		return err
	}

	if cmdctx.Args == "" {
		_, err := cmdctx.TryReply(`**Current Sampler:** %s
Samplers: %s`, cmdctx.Executor.Config.Get().SamplerName, strings.Join(samplerNames(samplers), ", "))
		return err
	}

	sampler := findSampler(samplers, cmdctx.Args)
	if sampler == "" {
		return ErrInvalidSampler
	}

	cmdctx.Executor.Config.Update(func(c *config.Config) {
		c.SamplerName = sampler
	})

	_, err = cmdctx.TryReply("**Sampler set to:** %s", sampler)
	return err
}
