package httpdownload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/go-git/go-billy/v5"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

const dirMode = 0o777

// HTTPDownloaderRepository implements repositories.DownloaderRepository with
// a retryable HTTP client writing into a go-billy filesystem.
type HTTPDownloaderRepository struct {
	fs     billy.Filesystem
	client *retryablehttp.Client
}

// NewDownloaderRepository creates a downloader. With zero retries every
// request is attempted exactly once.
func NewDownloaderRepository(
	fs billy.Filesystem,
	options entities.TransportOptions,
) repositories.DownloaderRepository {
	client := retryablehttp.NewClient()
	client.HTTPClient = cleanhttp.DefaultPooledClient()
	client.HTTPClient.Timeout = options.Timeout
	client.RetryMax = options.Retries
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = leveledLogger{}

	return &HTTPDownloaderRepository{
		fs:     fs,
		client: client,
	}
}

func (it *HTTPDownloaderRepository) Download(
	ctx context.Context,
	rawURL, destination string,
) (string, error) {
	if err := it.fs.MkdirAll(filepath.Dir(destination), dirMode); err != nil {
		return "", fmt.Errorf("%w: failed to create %q: %w", entities.ErrFilesystem, filepath.Dir(destination), err)
	}

	if _, err := it.fs.Stat(destination); err == nil {
		if err = it.fs.Remove(destination); err != nil {
			return "", fmt.Errorf("%w: failed to remove %q: %w", entities.ErrFilesystem, destination, err)
		}
		logger.Infof("Deleted %s", destination)
	}

	logger.Infof("Downloading... %s", destination)

	request, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		// the URL carries credentials, keep it out of the message
		return "", fmt.Errorf("%w: invalid download URL for %q", entities.ErrTransport, destination)
	}

	response, err := it.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("%w: failed to download %q: %w", entities.ErrTransport, destination, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf(
			"%w: unexpected status %q downloading %q",
			entities.ErrTransport, response.Status, destination,
		)
	}

	file, err := it.fs.Create(destination)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create %q: %w", entities.ErrFilesystem, destination, err)
	}

	written, copyErr := io.Copy(file, response.Body)
	closeErr := file.Close()
	if copyErr != nil {
		return "", fmt.Errorf("%w: failed to stream %q: %w", entities.ErrTransport, destination, copyErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("%w: failed to write %q: %w", entities.ErrFilesystem, destination, closeErr)
	}

	logger.Infof("Downloaded %s (%s)", destination, humanize.Bytes(uint64(written)))
	return destination, nil
}
