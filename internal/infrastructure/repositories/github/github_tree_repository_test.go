//go:build unit

package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/repositories/github"
)

const treeResponse = `{
  "sha": "abc123",
  "truncated": false,
  "tree": [
    {"path": ".gitmodules", "type": "blob", "sha": "111aaa"},
    {"path": "lib", "type": "tree", "sha": "222bbb"},
    {"path": "lib/foo", "type": "commit", "sha": "def456"}
  ]
}`

func TestGitHubTreeRepositoryListTree(t *testing.T) {
	t.Parallel()

	t.Run("should list the recursive tree with basic auth", func(t *testing.T) {
		t.Parallel()

		// given
		var path, recursive, user, password string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			recursive = r.URL.Query().Get("recursive")
			user, password, _ = r.BasicAuth()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(treeResponse))
		}))
		defer server.Close()

		repository, err := github.NewTreeRepository(
			server.URL, entities.Credentials{Username: "octocat", Password: "secret"},
		)
		require.NoError(t, err)

		// when
		entries, err := repository.ListTree(
			context.Background(), entities.RepoCoordinate{Owner: "acme", Name: "widgets", Ref: "abc123"},
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/repos/acme/widgets/git/trees/abc123", path)
		assert.Equal(t, "1", recursive)
		assert.Equal(t, "octocat", user)
		assert.Equal(t, "secret", password)
		assert.Equal(t, []entities.TreeEntry{
			{Path: ".gitmodules", ObjectID: "111aaa"},
			{Path: "lib", ObjectID: "222bbb", IsDir: true},
			{Path: "lib/foo", ObjectID: "def456"},
		}, entries)
	})

	t.Run("should wrap API failures as transport errors", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "Not Found"}`))
		}))
		defer server.Close()

		repository, err := github.NewTreeRepository(server.URL+"/", entities.Credentials{})
		require.NoError(t, err)

		// when
		entries, err := repository.ListTree(
			context.Background(), entities.RepoCoordinate{Owner: "acme", Name: "widgets", Ref: "abc123"},
		)

		// then
		require.ErrorIs(t, err, entities.ErrTransport)
		assert.Nil(t, entries)
	})

	t.Run("should reject an invalid API URL", func(t *testing.T) {
		t.Parallel()

		// given
		apiURL := "://bad"

		// when
		repository, err := github.NewTreeRepository(apiURL, entities.Credentials{})

		// then
		require.ErrorIs(t, err, entities.ErrUsage)
		assert.Nil(t, repository)
	})
}
