package repositories

import (
	"context"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
)

// TreeRepository lists the full recursive tree of a repository snapshot on
// the hosting service.
type TreeRepository interface {
	ListTree(ctx context.Context, coordinate entities.RepoCoordinate) ([]entities.TreeEntry, error)
}
