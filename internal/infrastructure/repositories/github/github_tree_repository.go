package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	"github.com/hashicorp/go-cleanhttp"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

const (
	providerName = "github"
	treeType     = "tree"
)

// GitHubTreeRepository implements repositories.TreeRepository for GitHub.
type GitHubTreeRepository struct {
	client *gh.Client
}

// NewTreeRepository creates a GitHub tree repository authenticating with
// basic auth against apiURL (empty for api.github.com).
func NewTreeRepository(
	apiURL string,
	credentials entities.Credentials,
) (repositories.TreeRepository, error) {
	transport := &gh.BasicAuthTransport{
		Username:  credentials.Username,
		Password:  credentials.Password,
		Transport: cleanhttp.DefaultPooledTransport(),
	}
	client := gh.NewClient(transport.Client())

	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid API URL %q: %w", entities.ErrUsage, apiURL, err)
		}
		client.BaseURL = baseURL
	}

	return &GitHubTreeRepository{client: client}, nil
}

// ListTree returns the recursive tree of the coordinate's ref.
func (it *GitHubTreeRepository) ListTree(
	ctx context.Context,
	coordinate entities.RepoCoordinate,
) ([]entities.TreeEntry, error) {
	tree, _, err := it.client.Git.GetTree(
		ctx, coordinate.Owner, coordinate.Name, coordinate.Ref,
		true, // recursive
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get repo tree of %s: %w", entities.ErrTransport, coordinate, err)
	}
	if tree.GetTruncated() {
		logger.Warnf("Tree listing of %s was truncated by %s, some submodules may be missing", coordinate, providerName)
	}

	entries := make([]entities.TreeEntry, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		entries = append(entries, entities.TreeEntry{
			Path:     entry.GetPath(),
			ObjectID: entry.GetSHA(),
			IsDir:    entry.GetType() == treeType,
		})
	}

	logger.Debugf("Listed %d tree entries of %s", len(entries), coordinate)
	return entries, nil
}
