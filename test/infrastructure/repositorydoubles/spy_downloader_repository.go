//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

// DownloadCall records a single invocation of Download.
type DownloadCall struct {
	URL         string
	Destination string
}

// SpyDownloaderRepository implements repositories.DownloaderRepository as a
// configurable spy. It is safe for concurrent use.
type SpyDownloaderRepository struct {
	// --- Download ---
	Errs  map[string]error // destination -> error
	Calls []DownloadCall

	mu sync.Mutex
}

var _ repositories.DownloaderRepository = (*SpyDownloaderRepository)(nil)

func (s *SpyDownloaderRepository) Download(
	_ context.Context,
	rawURL, destination string,
) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, DownloadCall{URL: rawURL, Destination: destination})
	if err := s.Errs[destination]; err != nil {
		return "", err
	}
	return destination, nil
}

// Destinations returns the destination of every call, in call order.
func (s *SpyDownloaderRepository) Destinations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	destinations := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		destinations = append(destinations, call.Destination)
	}
	return destinations
}
