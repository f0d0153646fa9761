//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/tarfetch/internal/domain/commands"
	"github.com/rios0rios0/tarfetch/internal/domain/entities"
)

// StubFetchCommand is a stub implementation of commands.Fetch.
type StubFetchCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.Fetch = (*StubFetchCommand)(nil)

func (s *StubFetchCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.ExecuteErr
}
