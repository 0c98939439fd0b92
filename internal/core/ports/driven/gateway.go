package driven

import (
	"context"

	"github.com/octoview/octoview-cli/internal/core/domain"
)

// Gateway performs read-only calls against the GitHub REST API.
// Implementations map non-2xx responses to typed errors so callers can
// match on them instead of probing for marker fields.
type Gateway interface {
	// SearchUsers returns one page of user-search suggestions.
	SearchUsers(ctx context.Context, query string, perPage int) (*domain.UserSearchResult, error)

	// FetchUserDetails returns the bio fields for a single user.
	FetchUserDetails(ctx context.Context, username string) (*domain.UserProfile, error)

	// FetchRepositories returns one page of a user's repositories.
	// The page's HasMore flag is true iff the page came back exactly full.
	FetchRepositories(ctx context.Context, username string, req domain.RepoPageRequest) (*domain.RepoPage, error)

	// FetchRepositoryDetails returns the full detail payload for one repository.
	FetchRepositoryDetails(ctx context.Context, owner, repo string) (*domain.RepositoryDetails, error)
}
