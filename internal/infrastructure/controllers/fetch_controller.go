package controllers

import (
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/tarfetch/internal/domain/commands"
	"github.com/rios0rios0/tarfetch/internal/domain/entities"
)

// FetchController handles the root command: fetch a tree and its submodules.
type FetchController struct {
	command commands.Fetch
}

var _ entities.Controller = (*FetchController)(nil)

// NewFetchController creates a new FetchController.
func NewFetchController(command commands.Fetch) *FetchController {
	return &FetchController{command: command}
}

// GetBind returns the Cobra command metadata for the fetch controller.
func (it *FetchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "tarfetch",
		Short: "Download a repository snapshot and its submodules as tarballs",
		Long: `Download a commit of a GitHub repository as a tarball, extract it and
fetch every submodule declared in its .gitmodules at the commit the
parent tree pins it to.

The result is a plain directory tree, without any Git metadata:
  <destination>/<ref>/                  the repository
  <destination>/<ref>/<submodule path>/ each submodule`,
	}
}

// Execute runs the fetch. Usage errors print the command help.
func (it *FetchController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := it.loadSettings(cmd)
	if err != nil {
		return err
	}

	err = it.command.Execute(cmd.Context(), settings)
	if errors.Is(err, entities.ErrUsage) {
		cmd.Println("Missing required parameters")
		_ = cmd.Help()
	}
	return err
}

// AddFlags adds the fetch flags to the given Cobra command.
func (it *FetchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("user", "u", "", "GitHub username")
	cmd.Flags().StringP("password", "p", "", "GitHub password or token")
	cmd.Flags().String("repo", "",
		"Repository including owner and commit SHA or branch (e.g. acme/widgets/master)")
	cmd.Flags().String("destination", "", "The directory to download to")

	cmd.Flags().StringP("config", "c", "", "Path to config file (default: auto-detect)")
	cmd.Flags().String("extractor", "", "Tarball extractor (native, tar)")
	cmd.Flags().Int("retries", 0, "Retries per download (default: no retry)")
	cmd.Flags().Int("concurrency", 0, "Maximum parallel submodule fetches (default: unbounded)")
	cmd.Flags().String("timeout", "", "Timeout per download, e.g. 5m (default: none)")
	cmd.Flags().Bool("recursive", false, "Also fetch submodules declared by submodules")
	cmd.Flags().String("base-url", "", "Tarball host URL (default: "+entities.DefaultBaseURL+")")
	cmd.Flags().String("api-url", "", "REST API URL (default: "+entities.DefaultAPIURL+")")
	cmd.Flags().String("manifest-host", "",
		"SSH host submodule URLs point at (default: "+entities.DefaultManifestHost+")")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
}

// loadSettings reads the config file, when there is one, and lets every flag
// set on the command line override it.
func (it *FetchController) loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	flags := cmd.Flags()

	cfgPath, _ := flags.GetString("config")
	if cfgPath == "" {
		if found, findErr := entities.FindConfigFile(); findErr == nil {
			cfgPath = found
		}
	}

	settings := &entities.Settings{}
	if cfgPath != "" {
		logger.Infof("Using config file: %s", cfgPath)
		loaded, err := entities.NewSettings(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	stringFlags := map[string]*string{
		"user":          &settings.User,
		"password":      &settings.Password,
		"repo":          &settings.Repo,
		"destination":   &settings.Destination,
		"extractor":     &settings.Extractor,
		"timeout":       &settings.Timeout,
		"base-url":      &settings.BaseURL,
		"api-url":       &settings.APIURL,
		"manifest-host": &settings.ManifestHost,
	}
	for name, field := range stringFlags {
		if value, _ := flags.GetString(name); value != "" {
			*field = value
		}
	}

	intFlags := map[string]*int{
		"retries":     &settings.Retries,
		"concurrency": &settings.Concurrency,
	}
	for name, field := range intFlags {
		if flags.Changed(name) {
			*field, _ = flags.GetInt(name)
		}
	}

	boolFlags := map[string]*bool{
		"recursive": &settings.Recursive,
		"verbose":   &settings.Verbose,
	}
	for name, field := range boolFlags {
		if flags.Changed(name) {
			*field, _ = flags.GetBool(name)
		}
	}

	if settings.Destination != "" {
		destination, err := filepath.Abs(settings.Destination)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid destination: %w", entities.ErrUsage, err)
		}
		settings.Destination = destination
	}

	return settings, nil
}
