package services

import (
	"context"
	"sync"

	"github.com/octoview/octoview-cli/internal/core/domain"
)

// fakeBlobStore is an in-memory blob store for tests.
type fakeBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (s *fakeBlobStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.blobs[key]
	return raw, ok
}

func (s *fakeBlobStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = value
	return nil
}

func (s *fakeBlobStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// fakeGateway lets each test script the gateway's behaviour.
type fakeGateway struct {
	searchUsersFn       func(ctx context.Context, query string, perPage int) (*domain.UserSearchResult, error)
	fetchUserFn         func(ctx context.Context, username string) (*domain.UserProfile, error)
	fetchReposFn        func(ctx context.Context, username string, req domain.RepoPageRequest) (*domain.RepoPage, error)
	fetchRepoDetailsFn  func(ctx context.Context, owner, repo string) (*domain.RepositoryDetails, error)
	fetchReposCallCount int
	mu                  sync.Mutex
}

func (g *fakeGateway) SearchUsers(ctx context.Context, query string, perPage int) (*domain.UserSearchResult, error) {
	return g.searchUsersFn(ctx, query, perPage)
}

func (g *fakeGateway) FetchUserDetails(ctx context.Context, username string) (*domain.UserProfile, error) {
	return g.fetchUserFn(ctx, username)
}

func (g *fakeGateway) FetchRepositories(ctx context.Context, username string, req domain.RepoPageRequest) (*domain.RepoPage, error) {
	g.mu.Lock()
	g.fetchReposCallCount++
	g.mu.Unlock()
	return g.fetchReposFn(ctx, username, req)
}

func (g *fakeGateway) FetchRepositoryDetails(ctx context.Context, owner, repo string) (*domain.RepositoryDetails, error) {
	return g.fetchRepoDetailsFn(ctx, owner, repo)
}

func (g *fakeGateway) reposCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fetchReposCallCount
}

// makeRepos builds n repositories with ascending IDs starting at base.
func makeRepos(base, n int) []domain.Repository {
	repos := make([]domain.Repository, 0, n)
	for i := 0; i < n; i++ {
		repos = append(repos, domain.Repository{
			ID:         int64(base + i),
			Name:       "repo",
			Stars:      i,
			OwnerLogin: "octocat",
		})
	}
	return repos
}
