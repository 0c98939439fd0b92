package domain

import (
	"strings"
	"time"
)

// UserProfile holds the bio fields of a GitHub user.
type UserProfile struct {
	// Login is the account name as reported by the API.
	Login string

	// Name is the optional display name.
	Name string

	// AvatarURL is the profile image location.
	AvatarURL string

	// Bio is the optional profile text.
	Bio string

	// Location is the optional free-form location.
	Location string

	// Followers is the follower count.
	Followers int

	// Following is the following count.
	Following int

	// PublicRepos is the public repository count.
	PublicRepos int

	// ProfileURL is the HTML profile page.
	ProfileURL string
}

// UserSearchItem is a single suggestion from the user-search endpoint.
type UserSearchItem struct {
	ID        int64
	Login     string
	AvatarURL string
	URL       string
	Type      string
}

// UserSearchResult is one page of user-search suggestions.
type UserSearchResult struct {
	Users      []UserSearchItem
	TotalCount int
	FetchedAt  time.Time
	Query      string
}

// UserSnapshot is a searched user together with their repositories,
// as held by the session cache and the results view.
type UserSnapshot struct {
	// Username is the normalized (lowercase) cache key.
	Username string

	// Profile holds the user's bio fields.
	Profile UserProfile

	// Repositories is the accumulated repository list, in last-fetched
	// page order.
	Repositories []Repository

	// TotalStars is the star sum across currently held repositories
	// at the time of caching.
	TotalStars int

	// HasMoreRepositories reports whether another page is known to exist.
	HasMoreRepositories bool

	// FetchedAt is the time of the last full write.
	FetchedAt time.Time
}

// NormalizeUsername lowercases a username for case-insensitive cache keys.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// SumStars totals the star counts of the given repositories.
func SumStars(repos []Repository) int {
	total := 0
	for i := range repos {
		total += repos[i].Stars
	}
	return total
}
