package commands

import (
	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
)

var AddressCommand = command.NewCommand("address", []string{"addr"}, addressCommandRun)

// addressCommandRun switches to a new image service and probes it. A failed
// probe keeps the previous address.
func addressCommandRun(cmdctx *command.CommandContext) error {
	store := cmdctx.Executor.Config

	if cmdctx.Args == "" {
		_, err := cmdctx.TryReply("**Current address:** %s", store.Get().Address)
		return err
	}

	previous := store.Get().Address
	address := config.FilterAddress(cmdctx.Args)
	store.Update(func(c *config.Config) {
		c.Address = address
	})

	catalog, err := cmdctx.Executor.SD.FetchCatalog(cmdctx.Context)
	if err != nil {
		store.Update(func(c *config.Config) {
			c.Address = previous
		})
		return err
	}

	_, err = cmdctx.TryReply("**Address set to:** %s (%d models, current %s)", address, len(catalog.Models), catalog.Current)
	return err
}
