package commands

import (
	"github.com/ayunami2000/sdpictures/commands/command"
)

var All = []*command.Command{
	HelpCommand,
	ChatCommand,
	ForceCommand,
	SuppressCommand,
	ModeCommand,
	VRAMCommand,
	ModelCommand,
	ListModelsCommand,
	SamplerCommand,
	PromptCommand,
	NegativePromptCommand,
	SizeCommand,
	InferenceStepsCommand,
	GuidanceScaleCommand,
	SeedCommand,
	RestoreFacesCommand,
	SaveImagesCommand,
	FilterCommand,
	AddressCommand,
	ClearCommand,
	RandomCommand,
}

// Register adds every console command and routes plain lines to chat.
func Register(e *command.Executor) {
	for _, cmd := range All {
		e.RegisterCommand(cmd)
	}

	e.SetFallback(ChatCommand.Name)
}
