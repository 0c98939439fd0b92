package domain

import (
	"strings"
	"time"
)

// Repository is a single entry in a user's repository list.
// Entries are immutable once fetched; a sort change replaces whole pages.
type Repository struct {
	// ID is the stable numeric identity from GitHub.
	ID int64

	// Name is the repository name without owner.
	Name string

	// Description is the optional short description.
	Description string

	// Stars is the stargazer count.
	Stars int

	// URL is the HTML repository page.
	URL string

	// Language is the optional primary language.
	Language string

	// UpdatedAt is the last update time reported by the API.
	UpdatedAt time.Time

	// OwnerLogin is the owning account name.
	OwnerLogin string
}

// RepositoryDetails is the full detail payload for one repository.
type RepositoryDetails struct {
	Repository

	// FullName is "owner/name" as reported by the API.
	FullName string

	// OwnerAvatarURL is the owner's profile image.
	OwnerAvatarURL string

	// Forks is the fork count.
	Forks int

	// Watchers is the watcher count.
	Watchers int

	// DefaultBranch is the default branch name.
	DefaultBranch string

	// CreatedAt is the repository creation time.
	CreatedAt time.Time

	// Topics is the set of topic strings.
	Topics []string

	// Homepage is the optional homepage URL.
	Homepage string
}

// RepoKey composes the case-insensitive cache key for a repository.
func RepoKey(owner, repo string) string {
	return strings.ToLower(strings.TrimSpace(owner)) + "/" + strings.ToLower(strings.TrimSpace(repo))
}
