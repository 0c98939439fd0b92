package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octoview/octoview-cli/internal/core/domain"
)

func TestUserSearchService_Search_CacheHitSkipsGateway(t *testing.T) {
	cache := NewSessionCache(newFakeBlobStore())
	cache.PutUser(domain.UserSnapshot{
		Username: "octocat",
		Profile:  domain.UserProfile{Login: "octocat", Name: "The Octocat"},
	})

	gateway := &fakeGateway{} // nil funcs: any call would panic
	svc := NewUserSearchService(gateway, cache, 10)

	snap, err := svc.Search(context.Background(), "OctoCat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", snap.Username)
	assert.Equal(t, "The Octocat", snap.Profile.Name)
	assert.Equal(t, 0, gateway.reposCalls())
}

func TestUserSearchService_Search_MissFetchesAndCaches(t *testing.T) {
	gateway := &fakeGateway{
		fetchUserFn: func(_ context.Context, username string) (*domain.UserProfile, error) {
			assert.Equal(t, "octocat", username)
			return &domain.UserProfile{Login: "octocat", PublicRepos: 12}, nil
		},
		fetchReposFn: func(_ context.Context, username string, req domain.RepoPageRequest) (*domain.RepoPage, error) {
			assert.Equal(t, 1, req.Page)
			assert.Equal(t, 10, req.PerPage)
			repos := makeRepos(0, 10)
			return &domain.RepoPage{Repositories: repos, HasMore: true}, nil
		},
	}
	cache := NewSessionCache(newFakeBlobStore())
	svc := NewUserSearchService(gateway, cache, 10)

	snap, err := svc.Search(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Len(t, snap.Repositories, 10)
	assert.True(t, snap.HasMoreRepositories)
	// makeRepos assigns stars 0..9.
	assert.Equal(t, 45, snap.TotalStars)
	assert.False(t, snap.FetchedAt.IsZero())

	cached, ok := cache.GetUser("octocat")
	require.True(t, ok)
	assert.Len(t, cached.Repositories, 10)

	// The second lookup is served from cache.
	_, err = svc.Search(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, 1, gateway.reposCalls())
}

func TestUserSearchService_Search_InvalidUsername(t *testing.T) {
	svc := NewUserSearchService(&fakeGateway{}, NewSessionCache(newFakeBlobStore()), 10)

	for _, username := range []string{"", "  ", "-octocat", "octo--cat", "has space"} {
		_, err := svc.Search(context.Background(), username)
		assert.ErrorIs(t, err, domain.ErrInvalidUsername, "username %q", username)
	}
}

func TestUserSearchService_Search_ProfileFetchFailure(t *testing.T) {
	gateway := &fakeGateway{
		fetchUserFn: func(_ context.Context, _ string) (*domain.UserProfile, error) {
			return nil, &domain.APIError{StatusCode: 404, Message: `User "ghost" not found`}
		},
		fetchReposFn: func(_ context.Context, _ string, _ domain.RepoPageRequest) (*domain.RepoPage, error) {
			return &domain.RepoPage{}, nil
		},
	}
	cache := NewSessionCache(newFakeBlobStore())
	svc := NewUserSearchService(gateway, cache, 10)

	_, err := svc.Search(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	// Nothing is cached on failure.
	_, ok := cache.GetUser("ghost")
	assert.False(t, ok)
}

func TestUserSearchService_Suggest(t *testing.T) {
	gateway := &fakeGateway{
		searchUsersFn: func(_ context.Context, query string, perPage int) (*domain.UserSearchResult, error) {
			assert.Equal(t, "octo", query)
			assert.Equal(t, 5, perPage)
			return &domain.UserSearchResult{
				TotalCount: 2,
				Users: []domain.UserSearchItem{
					{Login: "octocat"},
					{Login: "octodog"},
				},
			}, nil
		},
	}
	svc := NewUserSearchService(gateway, NewSessionCache(newFakeBlobStore()), 10)

	result, err := svc.Suggest(context.Background(), "octo", 5)
	require.NoError(t, err)
	assert.Len(t, result.Users, 2)
}

func TestUserSearchService_Suggest_InvalidQuery(t *testing.T) {
	svc := NewUserSearchService(&fakeGateway{}, NewSessionCache(newFakeBlobStore()), 10)

	_, err := svc.Suggest(context.Background(), "a", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserSearchService_Suggest_GatewayError(t *testing.T) {
	gateway := &fakeGateway{
		searchUsersFn: func(_ context.Context, _ string, _ int) (*domain.UserSearchResult, error) {
			return nil, errors.New("boom")
		},
	}
	svc := NewUserSearchService(gateway, NewSessionCache(newFakeBlobStore()), 10)

	_, err := svc.Suggest(context.Background(), "octo", 5)
	assert.Error(t, err)
}

func TestUserSearchService_RecentAndClear(t *testing.T) {
	cache := NewSessionCache(newFakeBlobStore())
	svc := NewUserSearchService(&fakeGateway{}, cache, 10)

	cache.PutUser(domain.UserSnapshot{Username: "alpha"})
	cache.PutUser(domain.UserSnapshot{Username: "beta"})

	recent := svc.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "beta", recent[0].Username)

	svc.ClearRecent()
	assert.Empty(t, svc.Recent())
}
