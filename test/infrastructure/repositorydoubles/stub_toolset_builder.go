//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

// StubToolsetBuilder implements repositories.ToolsetBuilder returning a fixed
// Toolset.
type StubToolsetBuilder struct {
	Toolset        *repositories.Toolset
	Err            error
	BuildCallCount int
	LastSettings   *entities.Settings
}

var _ repositories.ToolsetBuilder = (*StubToolsetBuilder)(nil)

func (s *StubToolsetBuilder) Build(settings *entities.Settings) (*repositories.Toolset, error) {
	s.BuildCallCount++
	s.LastSettings = settings
	return s.Toolset, s.Err
}

// NewSpyToolset wires fresh spies into a Toolset.
func NewSpyToolset() (
	*repositories.Toolset,
	*SpyDownloaderRepository,
	*SpyUnpackerRepository,
	*StubTreeRepository,
	*SpyWorkspaceRepository,
) {
	downloader := &SpyDownloaderRepository{}
	unpacker := &SpyUnpackerRepository{}
	tree := &StubTreeRepository{}
	workspace := &SpyWorkspaceRepository{Files: map[string][]byte{}}

	return &repositories.Toolset{
		Downloader: downloader,
		Unpacker:   unpacker,
		Tree:       tree,
		Workspace:  workspace,
	}, downloader, unpacker, tree, workspace
}
