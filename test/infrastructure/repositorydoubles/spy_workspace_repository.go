//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"os"
	"sync"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

// MoveCall records a single invocation of MoveContents.
type MoveCall struct {
	Source string
	Target string
}

// SpyWorkspaceRepository implements repositories.WorkspaceRepository over an
// in-memory file map. It is safe for concurrent use.
type SpyWorkspaceRepository struct {
	// --- ReadFile / Exists ---
	Files map[string][]byte // path -> content

	// --- Remove ---
	RemoveErr error
	Removed   []string

	// --- MoveContents ---
	MoveErrs map[string]error // source -> error
	Moves    []MoveCall

	mu sync.Mutex
}

var _ repositories.WorkspaceRepository = (*SpyWorkspaceRepository)(nil)

func (s *SpyWorkspaceRepository) ReadFile(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.Files[path]
	if !ok {
		return nil, fmt.Errorf("%w: failed to read %q: %w", entities.ErrFilesystem, path, os.ErrNotExist)
	}
	return data, nil
}

func (s *SpyWorkspaceRepository) Exists(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.Files[path]
	return ok
}

func (s *SpyWorkspaceRepository) Remove(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Removed = append(s.Removed, path)
	return s.RemoveErr
}

func (s *SpyWorkspaceRepository) MoveContents(source, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Moves = append(s.Moves, MoveCall{Source: source, Target: target})
	return s.MoveErrs[source]
}
