package driving

import (
	"context"

	"github.com/octoview/octoview-cli/internal/core/domain"
)

// RepoDetailsResult is a detail payload plus its provenance.
type RepoDetailsResult struct {
	// Details is the payload to display.
	Details domain.RepositoryDetails

	// FromCache is true when a live fetch failed and a previously
	// cached copy is being shown instead.
	FromCache bool
}

// RepoDetailsService fetches repository details, falling back to the
// session cache when the live fetch fails.
type RepoDetailsService interface {
	// Get returns fresh details on success, a cached copy marked
	// FromCache on failure with a prior cache hit, or the fetch error
	// when no fallback exists.
	Get(ctx context.Context, owner, repo string) (*RepoDetailsResult, error)
}
