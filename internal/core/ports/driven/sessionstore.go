package driven

import (
	"github.com/octoview/octoview-cli/internal/core/domain"
)

// SessionStore is the bounded, recency-ordered cache for searched users
// and repository detail pages. Both partitions evict their least-recently
// inserted entry when full; capacities are independent.
//
// Reads never fail: a missing or corrupt underlying blob reads as an
// empty cache.
type SessionStore interface {
	// PutUser inserts or refreshes a user snapshot, promoting its key to
	// the front of the recency order and evicting the tail when over
	// capacity. The full payload is always overwritten and FetchedAt
	// stamped.
	PutUser(snapshot domain.UserSnapshot)

	// GetUser looks up a snapshot by case-insensitive username.
	// A read does not promote the entry.
	GetUser(username string) (domain.UserSnapshot, bool)

	// ListRecentUsers returns cached snapshots, most recently cached
	// first. Keys with no resolvable payload are skipped.
	ListRecentUsers() []domain.UserSnapshot

	// UpdateUserRepositories replaces the repositories and
	// has-more flag of an existing entry. It is a no-op when the key is
	// absent and does not alter the recency order.
	UpdateUserRepositories(username string, repos []domain.Repository, hasMore bool)

	// ClearUsers drops the whole user partition.
	ClearUsers()

	// PutRepoDetails inserts or refreshes a repository detail payload
	// under the case-insensitive "owner/repo" key.
	PutRepoDetails(owner, repo string, details domain.RepositoryDetails)

	// GetRepoDetails looks up a detail payload by owner and repo name.
	GetRepoDetails(owner, repo string) (domain.RepositoryDetails, bool)
}
