//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/tarfetch/internal/domain/commands"
	"github.com/rios0rios0/tarfetch/internal/domain/entities"
)

// StubManifestCommand is a stub implementation of commands.Manifest.
type StubManifestCommand struct {
	Entries          []entities.SubmoduleEntry
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.ManifestOptions
}

var _ commands.Manifest = (*StubManifestCommand)(nil)

func (s *StubManifestCommand) Execute(
	_ context.Context,
	opts commands.ManifestOptions,
) ([]entities.SubmoduleEntry, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Entries, s.ExecuteErr
}
