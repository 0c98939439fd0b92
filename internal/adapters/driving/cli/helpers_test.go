package cli

import (
	"context"
	"time"

	"github.com/octoview/octoview-cli/internal/core/domain"
	"github.com/octoview/octoview-cli/internal/core/ports/driving"
)

type fakeSearchService struct {
	snapshot *domain.UserSnapshot
	err      error
	recent   []domain.UserSnapshot
	cleared  bool
}

func (f *fakeSearchService) Search(context.Context, string) (*domain.UserSnapshot, error) {
	return f.snapshot, f.err
}

func (f *fakeSearchService) Suggest(_ context.Context, query string, _ int) (*domain.UserSearchResult, error) {
	return &domain.UserSearchResult{
		Users: []domain.UserSearchItem{{Login: "octocat"}, {Login: "octodog"}},
		Query: query,
	}, f.err
}

func (f *fakeSearchService) Recent() []domain.UserSnapshot { return f.recent }

func (f *fakeSearchService) ClearRecent() { f.cleared = true }

type fakeDetailsService struct {
	result *driving.RepoDetailsResult
	err    error
}

func (f *fakeDetailsService) Get(context.Context, string, string) (*driving.RepoDetailsResult, error) {
	return f.result, f.err
}

type fakePagerFactory struct{}

func (fakePagerFactory) NewPager(domain.UserSnapshot) driving.RepoPager { return nil }

func sampleSnapshot() *domain.UserSnapshot {
	return &domain.UserSnapshot{
		Username: "octocat",
		Profile: domain.UserProfile{
			Login:       "octocat",
			Name:        "The Octocat",
			Followers:   100,
			Following:   0,
			PublicRepos: 8,
		},
		Repositories: []domain.Repository{
			{Name: "hello-world", Stars: 42, Language: "Go"},
			{Name: "spoon-knife", Stars: 12},
		},
		TotalStars: 54,
		FetchedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// setupTestServices wires fakes into the package-level services and
// returns a cleanup that restores the unwired state.
func setupTestServices(search *fakeSearchService, details *fakeDetailsService) func() {
	SetServices(&Services{
		Search:  search,
		Pagers:  fakePagerFactory{},
		Details: details,
	})
	return func() {
		searchService = nil
		pagerFactory = nil
		detailsService = nil
		network = nil
		searchJSON = false
		searchSuggest = false
		repoJSON = false
		rootCmd.SetArgs(nil)
	}
}
