package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/tarfetch/internal"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/controllers"
)

// flagged is implemented by controllers that own command-specific flags.
type flagged interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand(fetchController *controllers.FetchController) *cobra.Command {
	bind := fetchController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          fetchController.Execute,
	}
	fetchController.AddFlags(cmd)

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE:  controller.Execute,
		}

		if fc, ok := controller.(flagged); ok {
			fc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func newCommand() *cobra.Command {
	// Inject controllers via DIG
	fetchController := injectFetchController()
	cobraRoot := buildRootCommand(fetchController)

	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	return cobraRoot
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	if err := newCommand().Execute(); err != nil {
		logger.Fatalf("Error executing 'tarfetch': %s", err)
	}
}
