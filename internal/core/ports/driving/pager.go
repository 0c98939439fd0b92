package driving

import (
	"context"

	"github.com/octoview/octoview-cli/internal/core/domain"
)

// RepoPager drives the incremental loading of one user's repository list.
// Exactly one pager exists per mounted results view; it owns the
// accumulated list and keeps the session cache in sync after every
// successful page.
type RepoPager interface {
	// Repositories returns the accumulated list ordered for display:
	// server order, re-ordered by the local star sort when one is active.
	Repositories() []domain.Repository

	// Page returns the 1-based number of the last fetched page.
	Page() int

	// HasMore reports whether another page is known to exist.
	HasMore() bool

	// IsFetching reports whether a continuation fetch is in flight.
	IsFetching() bool

	// NameSort returns the active server-driven sort.
	NameSort() domain.NameSort

	// StarSort returns the active local display sort.
	StarSort() domain.StarSort

	// PaginationError returns the dismissible continuation-failure
	// message, or empty when none is pending.
	PaginationError() string

	// RequestNextPage fetches the next page when allowed. It refuses
	// silently (returns false) while no more pages exist, a fetch is in
	// flight, or an undismissed pagination error is pending.
	RequestNextPage(ctx context.Context) bool

	// ChangeNameSort switches the server-driven sort, refetching page 1
	// and replacing the accumulated list. A no-op when the sort is
	// unchanged. The initial-fetch error is returned; the view treats it
	// as a load failure, not a pagination error.
	ChangeNameSort(ctx context.Context, sort domain.NameSort) error

	// SetStarSort changes the local display sort. Never refetches.
	SetStarSort(sort domain.StarSort)

	// DismissError clears a pending pagination error so continuation
	// may resume.
	DismissError()

	// Invalidate detaches the pager from its view: any in-flight fetch
	// resolving afterwards is discarded instead of applied.
	Invalidate()
}

// PagerFactory creates a pager seeded with a search snapshot.
type PagerFactory interface {
	// NewPager adopts the snapshot's repositories as page 1 of the
	// accumulated list.
	NewPager(seed domain.UserSnapshot) RepoPager
}
