package domain

import "sort"

// NameSort is the server-driven sort axis for repository lists.
// Changing it forces a refetch from page 1 under the new order.
type NameSort int

const (
	// NameSortNone falls back to the API default: last updated, descending.
	NameSortNone NameSort = iota
	// NameSortAsc sorts by full name, ascending.
	NameSortAsc
	// NameSortDesc sorts by full name, descending.
	NameSortDesc
)

// String returns the string representation of the name sort.
func (s NameSort) String() string {
	switch s {
	case NameSortAsc:
		return "name-asc"
	case NameSortDesc:
		return "name-desc"
	default:
		return "updated"
	}
}

// APISort returns the sort field and direction for the repository
// list endpoint.
func (s NameSort) APISort() (field, direction string) {
	switch s {
	case NameSortAsc:
		return "full_name", "asc"
	case NameSortDesc:
		return "full_name", "desc"
	default:
		return "updated", "desc"
	}
}

// StarSort is the client-driven sort axis applied at render time.
// It never triggers a refetch and never alters the fetched data.
type StarSort int

const (
	// StarSortNone keeps the server-provided order.
	StarSortNone StarSort = iota
	// StarSortAsc orders by star count, ascending.
	StarSortAsc
	// StarSortDesc orders by star count, descending.
	StarSortDesc
)

// String returns the string representation of the star sort.
func (s StarSort) String() string {
	switch s {
	case StarSortAsc:
		return "stars-asc"
	case StarSortDesc:
		return "stars-desc"
	default:
		return "none"
	}
}

// SortByStars returns a copy of repos ordered by star count.
// With StarSortNone the input order is preserved.
func SortByStars(repos []Repository, s StarSort) []Repository {
	out := make([]Repository, len(repos))
	copy(out, repos)
	if s == StarSortNone {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if s == StarSortAsc {
			return out[i].Stars < out[j].Stars
		}
		return out[i].Stars > out[j].Stars
	})
	return out
}

// RepoPageRequest describes one page fetch of a user's repositories.
type RepoPageRequest struct {
	// Page is the 1-based page number to fetch.
	Page int

	// PerPage is the fixed page size.
	PerPage int

	// Sort is the server-driven sort axis.
	Sort NameSort
}

// RepoPage is the result of one repository page fetch.
type RepoPage struct {
	// Repositories is the fetched page, in API order.
	Repositories []Repository

	// HasMore is true iff the returned page was exactly full.
	// This is a heuristic, not an authoritative total-count check.
	HasMore bool
}
