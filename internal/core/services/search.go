package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/octoview/octoview-cli/internal/core/domain"
	"github.com/octoview/octoview-cli/internal/core/ports/driven"
	"github.com/octoview/octoview-cli/internal/core/ports/driving"
	"github.com/octoview/octoview-cli/internal/logger"
)

// Ensure UserSearchService implements the interface.
var _ driving.UserSearchService = (*UserSearchService)(nil)

// UserSearchService resolves usernames to profile-with-repositories
// snapshots. Whole results are cached: a hit skips the API entirely,
// a miss fetches profile and first repository page concurrently and
// caches the combined snapshot.
type UserSearchService struct {
	gateway driven.Gateway
	cache   driven.SessionStore
	perPage int
}

// NewUserSearchService creates a user search service.
func NewUserSearchService(gateway driven.Gateway, cache driven.SessionStore, perPage int) *UserSearchService {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return &UserSearchService{gateway: gateway, cache: cache, perPage: perPage}
}

// Search returns the snapshot for a username, cache first.
func (s *UserSearchService) Search(ctx context.Context, username string) (*domain.UserSnapshot, error) {
	logger.Section("User Search")

	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}

	key := domain.NormalizeUsername(username)
	if cached, ok := s.cache.GetUser(key); ok {
		logger.Debug("cache hit for %s", key)
		return &cached, nil
	}
	logger.Debug("cache miss for %s", key)

	// Profile and first repository page are independent; fetch both at once.
	var (
		wg       sync.WaitGroup
		profile  *domain.UserProfile
		page     *domain.RepoPage
		profErr  error
		reposErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, profErr = s.gateway.FetchUserDetails(ctx, key)
	}()
	go func() {
		defer wg.Done()
		page, reposErr = s.gateway.FetchRepositories(ctx, key, domain.RepoPageRequest{
			Page:    1,
			PerPage: s.perPage,
			Sort:    domain.NameSortNone,
		})
	}()
	wg.Wait()

	if profErr != nil {
		return nil, fmt.Errorf("fetch user details: %w", profErr)
	}
	if reposErr != nil {
		return nil, fmt.Errorf("fetch repositories: %w", reposErr)
	}

	snapshot := domain.UserSnapshot{
		Username:            key,
		Profile:             *profile,
		Repositories:        page.Repositories,
		TotalStars:          domain.SumStars(page.Repositories),
		HasMoreRepositories: page.HasMore,
		FetchedAt:           time.Now(),
	}
	s.cache.PutUser(snapshot)
	logger.Info("cached %s with %d repositories", key, len(snapshot.Repositories))

	return &snapshot, nil
}

// Suggest returns live user-search suggestions for a partial query.
func (s *UserSearchService) Suggest(ctx context.Context, query string, perPage int) (*domain.UserSearchResult, error) {
	if err := domain.ValidateSearchQuery(query); err != nil {
		return nil, err
	}
	if perPage < 1 {
		perPage = s.perPage
	}

	result, err := s.gateway.SearchUsers(ctx, query, perPage)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return result, nil
}

// Recent lists cached snapshots, most recently searched first.
func (s *UserSearchService) Recent() []domain.UserSnapshot {
	return s.cache.ListRecentUsers()
}

// ClearRecent drops the cached search history.
func (s *UserSearchService) ClearRecent() {
	s.cache.ClearUsers()
}
