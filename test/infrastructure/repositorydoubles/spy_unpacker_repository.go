//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

// SpyUnpackerRepository implements repositories.UnpackerRepository as a spy.
// It "extracts" a tarball into its path minus the extension.
type SpyUnpackerRepository struct {
	// --- Unpack ---
	Errs  map[string]error // tarball path -> error
	Calls []string

	mu sync.Mutex
}

var _ repositories.UnpackerRepository = (*SpyUnpackerRepository)(nil)

func (s *SpyUnpackerRepository) Name() string { return "spy" }

func (s *SpyUnpackerRepository) Unpack(_ context.Context, tarballPath string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, tarballPath)
	if err := s.Errs[tarballPath]; err != nil {
		return "", err
	}
	return strings.TrimSuffix(tarballPath, filepath.Ext(tarballPath)), nil
}
