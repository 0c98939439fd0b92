package driving

import (
	"context"

	"github.com/octoview/octoview-cli/internal/core/domain"
)

// UserSearchService resolves a username to a profile-with-repositories
// snapshot, consulting the session cache before the live API.
type UserSearchService interface {
	// Search returns the snapshot for a username. A cache hit is
	// returned as-is; a miss fetches profile and first repository page,
	// caches the combined result and returns it.
	Search(ctx context.Context, username string) (*domain.UserSnapshot, error)

	// Suggest returns live user-search suggestions for a partial query.
	Suggest(ctx context.Context, query string, perPage int) (*domain.UserSearchResult, error)

	// Recent lists cached snapshots, most recently searched first.
	Recent() []domain.UserSnapshot

	// ClearRecent drops the cached search history.
	ClearRecent()
}
