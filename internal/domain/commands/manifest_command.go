package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

// Manifest is the interface for the manifest command.
type Manifest interface {
	Execute(ctx context.Context, opts ManifestOptions) ([]entities.SubmoduleEntry, error)
}

// ManifestOptions holds runtime options for the manifest command.
type ManifestOptions struct {
	Path string
	Host string
}

// ManifestCommand lists the submodules a local manifest declares, the same
// way a fetch would resolve them.
type ManifestCommand struct {
	workspace repositories.WorkspaceRepository
}

// NewManifestCommand creates a new ManifestCommand.
func NewManifestCommand(workspace repositories.WorkspaceRepository) *ManifestCommand {
	return &ManifestCommand{workspace: workspace}
}

// Execute returns the declared submodules sorted by local path.
func (it *ManifestCommand) Execute(
	_ context.Context,
	opts ManifestOptions,
) ([]entities.SubmoduleEntry, error) {
	data, err := it.workspace.ReadFile(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read submodule manifest: %w", err)
	}

	submodules, err := entities.ParseSubmodules(data, opts.Host)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrFilesystem, err)
	}

	entries := make([]entities.SubmoduleEntry, 0, len(submodules))
	for _, entry := range submodules {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LocalPath < entries[j].LocalPath
	})
	return entries, nil
}
