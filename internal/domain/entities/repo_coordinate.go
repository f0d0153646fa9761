package entities

import (
	"fmt"
	"net/url"
	"strings"
)

const coordinateParts = 3

// RepoCoordinate identifies a downloadable tree snapshot: owner, repository
// name and a commit SHA or branch.
type RepoCoordinate struct {
	Owner string
	Name  string
	Ref   string
}

// ParseRepoCoordinate splits an "<owner>/<name>/<ref>" identifier. The segments
// are not validated: missing or empty parts are kept as empty strings.
func ParseRepoCoordinate(raw string) RepoCoordinate {
	parts := strings.SplitN(raw, "/", coordinateParts)
	for len(parts) < coordinateParts {
		parts = append(parts, "")
	}
	return RepoCoordinate{
		Owner: parts[0],
		Name:  parts[1],
		Ref:   parts[2],
	}
}

func (c RepoCoordinate) String() string {
	return c.Owner + "/" + c.Name + "/" + c.Ref
}

// TarballURL builds the tarball download URL under baseURL with the
// credentials embedded as URL userinfo.
func (c RepoCoordinate) TarballURL(baseURL string, credentials Credentials) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base URL %q: %w", ErrUsage, baseURL, err)
	}

	tarball := base.JoinPath(c.Owner, c.Name, "tarball", c.Ref)
	tarball.User = url.UserPassword(credentials.Username, credentials.Password)
	return tarball.String(), nil
}
