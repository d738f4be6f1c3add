package commands

import (
	"strings"

	"github.com/ayunami2000/sdpictures/commands/command"
)

var ListModelsCommand = command.NewCommand("listmodels", []string{"lm"}, listModelsCommandRun)

func listModelsCommandRun(cmdctx *command.CommandContext) error {
	catalog, err := cmdctx.Executor.SD.FetchCatalog(cmdctx.Context)
	if err != nil {
		return err
	}

	samplers, err := cmdctx.Executor.SD.GetSamplers(cmdctx.Context)
	if err != nil {
		return err
	}

	_, err = cmdctx.TryReply(`**Models:**
__Stable Diffusion__: %s
__Current__: %s
__Samplers__: %s`,
		strings.Join(catalog.Models, ", "),
		catalog.Current,
		strings.Join(samplerNames(samplers), ", "))

	return err
}
