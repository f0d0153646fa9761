//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

// StubTreeRepository implements repositories.TreeRepository with canned
// listings. EntriesByRef takes precedence over Entries.
type StubTreeRepository struct {
	// --- ListTree ---
	Entries      []entities.TreeEntry
	EntriesByRef map[string][]entities.TreeEntry
	Err          error
	Calls        []entities.RepoCoordinate

	mu sync.Mutex
}

var _ repositories.TreeRepository = (*StubTreeRepository)(nil)

func (s *StubTreeRepository) ListTree(
	_ context.Context,
	coordinate entities.RepoCoordinate,
) ([]entities.TreeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, coordinate)
	if s.Err != nil {
		return nil, s.Err
	}
	if entries, ok := s.EntriesByRef[coordinate.Ref]; ok {
		return entries, nil
	}
	return s.Entries, nil
}
