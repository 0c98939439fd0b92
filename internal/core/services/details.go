package services

import (
	"context"
	"fmt"

	"github.com/octoview/octoview-cli/internal/core/ports/driven"
	"github.com/octoview/octoview-cli/internal/core/ports/driving"
	"github.com/octoview/octoview-cli/internal/logger"
)

// Ensure RepoDetailsService implements the interface.
var _ driving.RepoDetailsService = (*RepoDetailsService)(nil)

// RepoDetailsService fetches repository details with a cache fallback:
// a failed live fetch shows the previously cached copy instead of an
// error when one exists.
type RepoDetailsService struct {
	gateway driven.Gateway
	cache   driven.SessionStore
}

// NewRepoDetailsService creates a repository details service.
func NewRepoDetailsService(gateway driven.Gateway, cache driven.SessionStore) *RepoDetailsService {
	return &RepoDetailsService{gateway: gateway, cache: cache}
}

// Get returns the detail payload for owner/repo.
//
// The cache lookup happens before the live attempt so the fallback
// reflects what was available at request time, not whatever a second
// lookup after the failure would find.
func (s *RepoDetailsService) Get(ctx context.Context, owner, repo string) (*driving.RepoDetailsResult, error) {
	cached, hadCache := s.cache.GetRepoDetails(owner, repo)

	details, err := s.gateway.FetchRepositoryDetails(ctx, owner, repo)
	if err == nil {
		s.cache.PutRepoDetails(owner, repo, *details)
		return &driving.RepoDetailsResult{Details: *details}, nil
	}

	if hadCache {
		logger.Info("serving cached details for %s/%s after fetch failure: %v", owner, repo, err)
		return &driving.RepoDetailsResult{Details: cached, FromCache: true}, nil
	}

	return nil, fmt.Errorf("fetch repository details: %w", err)
}
