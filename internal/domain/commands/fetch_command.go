package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

const tarballExtension = ".tgz"

// Fetch is the interface for the fetch command (the root pipeline).
type Fetch interface {
	Execute(ctx context.Context, settings *entities.Settings) error
}

// FetchCommand orchestrates the full flow:
// download root tarball -> unpack -> read manifest -> fetch submodules.
type FetchCommand struct {
	builder    repositories.ToolsetBuilder
	submodules Submodules
}

// NewFetchCommand creates a new FetchCommand.
func NewFetchCommand(builder repositories.ToolsetBuilder, submodules Submodules) *FetchCommand {
	return &FetchCommand{
		builder:    builder,
		submodules: submodules,
	}
}

// Execute runs the pipeline. Settings are validated before anything touches
// the network, so a usage error never causes a request.
func (it *FetchCommand) Execute(ctx context.Context, settings *entities.Settings) error {
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return err
	}
	if settings.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	toolset, err := it.builder.Build(settings)
	if err != nil {
		return fmt.Errorf("failed to prepare fetch: %w", err)
	}

	coordinate := settings.Coordinate()
	credentials := settings.Credentials()
	logger.Infof("Fetching %s into %s", coordinate, settings.Destination)

	dir, err := downloadAndUnpack(ctx, toolset, settings.BaseURL, credentials, coordinate, settings.Destination)
	if err != nil {
		return err
	}

	manifest, err := toolset.Workspace.ReadFile(filepath.Join(dir, entities.ManifestFileName))
	if err != nil {
		return fmt.Errorf("failed to read submodule manifest: %w", err)
	}

	submodules, err := entities.ParseSubmodules(manifest, settings.ManifestHost)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrFilesystem, err)
	}
	if len(submodules) == 0 {
		logger.Infof("No submodules declared in %s", dir)
		return nil
	}

	results, err := it.submodules.Execute(ctx, toolset, SubmodulesOptions{
		Parent:       coordinate,
		ParentDir:    dir,
		Destination:  settings.Destination,
		Submodules:   submodules,
		BaseURL:      settings.BaseURL,
		Credentials:  credentials,
		ManifestHost: settings.ManifestHost,
		Concurrency:  settings.Concurrency,
		Recursive:    settings.Recursive,
	})

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	logger.Infof(
		"Fetch complete: %d submodules processed, %d failed",
		len(results), failed,
	)

	return err
}

// downloadAndUnpack fetches the tarball of coordinate into destination,
// extracts it and deletes the tarball. It returns the extracted directory.
func downloadAndUnpack(
	ctx context.Context,
	toolset *repositories.Toolset,
	baseURL string,
	credentials entities.Credentials,
	coordinate entities.RepoCoordinate,
	destination string,
) (string, error) {
	rawURL, err := coordinate.TarballURL(baseURL, credentials)
	if err != nil {
		return "", err
	}

	tarball := filepath.Join(destination, coordinate.Ref+tarballExtension)
	if _, err = toolset.Downloader.Download(ctx, rawURL, tarball); err != nil {
		return "", err
	}

	dir, err := toolset.Unpacker.Unpack(ctx, tarball)
	if err != nil {
		return "", err
	}

	if err = toolset.Workspace.Remove(tarball); err != nil {
		return "", err
	}
	return dir, nil
}
