package controllers

import (
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/tarfetch/internal/domain/commands"
	"github.com/rios0rios0/tarfetch/internal/domain/entities"
)

// ManifestController handles the "manifest" subcommand.
type ManifestController struct {
	command commands.Manifest
}

var _ entities.Controller = (*ManifestController)(nil)

// NewManifestController creates a new ManifestController.
func NewManifestController(command commands.Manifest) *ManifestController {
	return &ManifestController{command: command}
}

// GetBind returns the Cobra command metadata for the manifest controller.
func (it *ManifestController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "manifest [path]",
		Short: "List the submodules a .gitmodules file declares",
		Long: `Parse a local .gitmodules file (default: ./.gitmodules) and list the
submodules a fetch would resolve, with their owner and repository.`,
	}
}

// Execute lists the submodules of the given manifest.
func (it *ManifestController) Execute(cmd *cobra.Command, args []string) error {
	manifestPath := entities.ManifestFileName
	if len(args) > 0 {
		manifestPath = args[0]
	}
	manifestPath, err := filepath.Abs(manifestPath)
	if err != nil {
		return fmt.Errorf("%w: invalid manifest path: %w", entities.ErrUsage, err)
	}

	host, _ := cmd.Flags().GetString("manifest-host")
	entries, err := it.command.Execute(cmd.Context(), commands.ManifestOptions{
		Path: manifestPath,
		Host: host,
	})
	if err != nil {
		return err
	}

	logger.Infof("Found %d submodules in %s", len(entries), manifestPath)
	for _, entry := range entries {
		cmd.Printf("%s\t%s/%s\n", entry.LocalPath, entry.Owner, entry.Name)
	}
	return nil
}

// AddFlags adds the manifest-specific flags to the given Cobra command.
func (it *ManifestController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("manifest-host", entities.DefaultManifestHost,
		"SSH host submodule URLs point at")
}
