package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/ayunami2000/sdpictures/commands"
	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
	noStream   bool
)

var rootCmd = &cobra.Command{
	Use:   "sdpictures",
	Short: "Send Stable Diffusion pictures from a text-generation chat",
	Long: `sdpictures asks an AUTOMATIC1111 Stable Diffusion API to draw what the
chat bot describes and inlines the result into the transcript.

Run without arguments to start the interactive chat.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: runChat,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive chat",
	RunE:  runChat,
}

var renderCmd = &cobra.Command{
	Use:   "render [description]",
	Short: "Draw a single description and print the resulting markup",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the image service models and samplers",
	RunE:  runModels,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	chatCmd.Flags().BoolVar(&noStream, "no-stream", false, "disable streaming when no picture is pending")
	rootCmd.Flags().AddFlagSet(chatCmd.Flags())

	rootCmd.AddCommand(chatCmd, renderCmd, modelsCmd)
}

func newExecutor(out io.Writer) (*command.Executor, error) {
	store, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	e := command.NewExecutor(command.NewServices(store, command.NewConsoleHost(noStream), out))
	commands.Register(e)
	return e, nil
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	e, err := newExecutor(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	catalog, err := e.SD.FetchCatalog(ctx)
	if err != nil {
		return fmt.Errorf("unable to fetch model catalog: %w", err)
	}
	logrus.WithFields(logrus.Fields{"models": len(catalog.Models), "current": catalog.Current}).Info("Connected to the image service")

	if e.Config.Get().ManageVRAM {
		if err := e.VRAM.Activate(ctx); err != nil {
			return err
		}
	}

	e.Config.Watch()

	prefix := e.Config.Get().Prefix
	fmt.Fprintf(e.Out, "Mode: %s. Type %shelp for commands.\n", e.Session.Mode(), prefix)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(e.Out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, prefix+"quit") || strings.EqualFold(line, prefix+"exit") {
			break
		}

		if err := e.Execute(ctx, line); err != nil {
			logrus.WithError(err).Debug("Command failed")
			fmt.Fprintf(e.Out, "**Error:** %s\n", err)
		}

		if ctx.Err() != nil {
			break
		}
	}

	return scanner.Err()
}

func runRender(cmd *cobra.Command, args []string) error {
	e, err := newExecutor(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	out, err := e.Generator.Generate(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Fprint(e.Out, out)
	return nil
}

func runModels(cmd *cobra.Command, args []string) error {
	e, err := newExecutor(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return commands.ListModelsCommand.Run(&command.CommandContext{
		Context:  cmd.Context(),
		Executor: e,
	})
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.Fatalln(err)
	}
}
