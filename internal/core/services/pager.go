package services

import (
	"context"
	"sync"

	"github.com/octoview/octoview-cli/internal/core/domain"
	"github.com/octoview/octoview-cli/internal/core/ports/driven"
	"github.com/octoview/octoview-cli/internal/core/ports/driving"
	"github.com/octoview/octoview-cli/internal/logger"
)

// DefaultPerPage is the fixed repository page size.
const DefaultPerPage = 10

// genericPageError is shown when a continuation fetch fails without a
// typed gateway error.
const genericPageError = "An unexpected error occurred"

// Ensure Pager implements the interface.
var _ driving.RepoPager = (*Pager)(nil)

// Pager owns the growth of one user's repository list across pages.
// It appends continuation pages, refetches from page 1 on a
// server-driven sort change and pushes every successful page back into
// the session cache so a later cache hit reflects the latest state.
//
// A generation counter invalidates in-flight fetches: any fetch that
// resolves after a sort change, reset or view teardown is discarded
// instead of applied.
type Pager struct {
	mu      sync.Mutex
	gateway driven.Gateway
	cache   driven.SessionStore

	username    string
	page        int
	perPage     int
	nameSort    domain.NameSort
	starSort    domain.StarSort
	accumulated []domain.Repository
	hasMore     bool
	fetching    bool
	pageErr     string
	generation  uint64
	invalidated bool
}

// Ensure PagerFactory implements the interface.
var _ driving.PagerFactory = (*PagerService)(nil)

// PagerService creates pagers bound to the gateway and session cache.
type PagerService struct {
	gateway driven.Gateway
	cache   driven.SessionStore
	perPage int
}

// NewPagerService creates a pager factory. perPage values below 1 fall
// back to the default page size.
func NewPagerService(gateway driven.Gateway, cache driven.SessionStore, perPage int) *PagerService {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return &PagerService{gateway: gateway, cache: cache, perPage: perPage}
}

// NewPager adopts the snapshot's repositories as page 1 of the
// accumulated list.
func (s *PagerService) NewPager(seed domain.UserSnapshot) driving.RepoPager {
	return &Pager{
		gateway:     s.gateway,
		cache:       s.cache,
		username:    domain.NormalizeUsername(seed.Username),
		page:        1,
		perPage:     s.perPage,
		accumulated: append([]domain.Repository(nil), seed.Repositories...),
		hasMore:     seed.HasMoreRepositories,
	}
}

// Repositories returns the accumulated list ordered for display. The
// server order is kept unless a local star sort is active, which fully
// re-orders the current list by star count alone for that render.
func (p *Pager) Repositories() []domain.Repository {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.SortByStars(p.accumulated, p.starSort)
}

// Page returns the 1-based number of the last fetched page.
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// HasMore reports whether another page is known to exist.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// IsFetching reports whether a continuation fetch is in flight.
func (p *Pager) IsFetching() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fetching
}

// NameSort returns the active server-driven sort.
func (p *Pager) NameSort() domain.NameSort {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nameSort
}

// StarSort returns the active local display sort.
func (p *Pager) StarSort() domain.StarSort {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.starSort
}

// PaginationError returns the pending continuation-failure message, or
// empty when none is pending.
func (p *Pager) PaginationError() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pageErr
}

// RequestNextPage fetches the next page. It refuses (returning false)
// while no more pages exist, a fetch is already in flight, a pagination
// error is undismissed, or the pager has been invalidated. A failed
// fetch records a dismissible error and keeps the accumulated list and
// has-more flag intact.
func (p *Pager) RequestNextPage(ctx context.Context) bool {
	p.mu.Lock()
	if !p.hasMore || p.fetching || p.pageErr != "" || p.invalidated {
		p.mu.Unlock()
		return false
	}
	p.fetching = true
	gen := p.generation
	req := domain.RepoPageRequest{Page: p.page + 1, PerPage: p.perPage, Sort: p.nameSort}
	username := p.username
	p.mu.Unlock()

	logger.Debug("pagination: fetching page %d for %s", req.Page, username)
	result, err := p.gateway.FetchRepositories(ctx, username, req)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.generation != gen {
		// Sort change or teardown raced this fetch; drop the result.
		logger.Debug("pagination: discarding stale page %d for %s", req.Page, username)
		return true
	}
	p.fetching = false

	if err != nil {
		p.pageErr = pageErrorMessage(err)
		logger.Warn("pagination: page %d failed for %s: %v", req.Page, username, err)
		return true
	}

	p.accumulated = append(p.accumulated, result.Repositories...)
	p.hasMore = result.HasMore
	p.page = req.Page
	p.cache.UpdateUserRepositories(username, p.accumulated, p.hasMore)
	logger.Debug("pagination: page %d loaded, %d repositories total, hasMore=%t",
		p.page, len(p.accumulated), p.hasMore)
	return true
}

// ChangeNameSort switches the server-driven sort. A genuine change
// discards the accumulated list, refetches page 1 under the new order
// and clears any pending pagination error. Failure of that refetch is
// returned to the caller as a view-level load error; the previous list
// and sort are kept so the view stays usable.
func (p *Pager) ChangeNameSort(ctx context.Context, sort domain.NameSort) error {
	p.mu.Lock()
	if sort == p.nameSort || p.invalidated {
		p.mu.Unlock()
		return nil
	}
	p.generation++
	gen := p.generation
	prev := p.nameSort
	p.nameSort = sort
	p.fetching = true
	username := p.username
	req := domain.RepoPageRequest{Page: 1, PerPage: p.perPage, Sort: sort}
	p.mu.Unlock()

	logger.Debug("pagination: refetching page 1 for %s under %s", username, sort)
	result, err := p.gateway.FetchRepositories(ctx, username, req)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.generation != gen {
		return nil
	}
	p.fetching = false

	if err != nil {
		p.nameSort = prev
		return err
	}

	p.accumulated = append([]domain.Repository(nil), result.Repositories...)
	p.hasMore = result.HasMore
	p.page = 1
	p.pageErr = ""
	p.cache.UpdateUserRepositories(username, p.accumulated, p.hasMore)
	return nil
}

// SetStarSort changes the local display sort. It never refetches and
// never touches the fetched data.
func (p *Pager) SetStarSort(sort domain.StarSort) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.starSort = sort
}

// DismissError clears a pending pagination error so continuation may
// resume.
func (p *Pager) DismissError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pageErr = ""
}

// Invalidate detaches the pager from its view. Any in-flight fetch
// resolving afterwards is discarded instead of applied.
func (p *Pager) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	p.invalidated = true
}

// pageErrorMessage picks the user-facing message for a continuation
// failure: the typed gateway message verbatim when present, otherwise a
// generic one.
func pageErrorMessage(err error) string {
	if apiErr, ok := domain.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericPageError
}
