package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/messages"
	"github.com/octoview/octoview-cli/internal/core/domain"
	"github.com/octoview/octoview-cli/internal/core/ports/driving"
)

type stubSearchService struct {
	snapshot *domain.UserSnapshot
	err      error
}

func (s *stubSearchService) Search(context.Context, string) (*domain.UserSnapshot, error) {
	return s.snapshot, s.err
}

func (s *stubSearchService) Suggest(context.Context, string, int) (*domain.UserSearchResult, error) {
	return &domain.UserSearchResult{}, nil
}

func (s *stubSearchService) Recent() []domain.UserSnapshot { return nil }

func (s *stubSearchService) ClearRecent() {}

type stubPager struct {
	repos []domain.Repository
}

func (p *stubPager) Repositories() []domain.Repository          { return p.repos }
func (p *stubPager) Page() int                                  { return 1 }
func (p *stubPager) HasMore() bool                              { return false }
func (p *stubPager) IsFetching() bool                           { return false }
func (p *stubPager) NameSort() domain.NameSort                  { return domain.NameSortNone }
func (p *stubPager) StarSort() domain.StarSort                  { return domain.StarSortNone }
func (p *stubPager) PaginationError() string                    { return "" }
func (p *stubPager) RequestNextPage(context.Context) bool       { return false }
func (p *stubPager) ChangeNameSort(context.Context, domain.NameSort) error {
	return nil
}
func (p *stubPager) SetStarSort(domain.StarSort) {}
func (p *stubPager) DismissError()               {}
func (p *stubPager) Invalidate()                 {}

type stubPagerFactory struct{}

func (stubPagerFactory) NewPager(seed domain.UserSnapshot) driving.RepoPager {
	return &stubPager{repos: seed.Repositories}
}

type stubDetailsService struct {
	result *driving.RepoDetailsResult
	err    error
}

func (s *stubDetailsService) Get(context.Context, string, string) (*driving.RepoDetailsResult, error) {
	return s.result, s.err
}

type stubNetwork struct {
	online       bool
	subscriber   func(bool)
	unsubscribed bool
}

func (n *stubNetwork) Online() bool { return n.online }

func (n *stubNetwork) Subscribe(fn func(online bool)) func() {
	n.subscriber = fn
	return func() { n.unsubscribed = true }
}

func testPorts() *Ports {
	return NewPorts(
		&stubSearchService{},
		stubPagerFactory{},
		&stubDetailsService{},
		nil,
	)
}

func setupApp(t *testing.T, ports *Ports) *App {
	t.Helper()
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(100, 40)
	return app
}

func TestNewApp_RequiresPorts(t *testing.T) {
	_, err := NewApp(NewPorts(nil, stubPagerFactory{}, &stubDetailsService{}, nil))
	assert.ErrorIs(t, err, ErrMissingSearchService)

	_, err = NewApp(NewPorts(&stubSearchService{}, nil, &stubDetailsService{}, nil))
	assert.ErrorIs(t, err, ErrMissingPagerFactory)

	_, err = NewApp(NewPorts(&stubSearchService{}, stubPagerFactory{}, nil, nil))
	assert.ErrorIs(t, err, ErrMissingDetailsService)
}

func TestApp_StartsOnSearchView(t *testing.T) {
	app := setupApp(t, testPorts())
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.Contains(t, app.View(), "Octoview")
}

func TestApp_UserLoadedNavigatesToResults(t *testing.T) {
	app := setupApp(t, testPorts())

	snapshot := &domain.UserSnapshot{
		Username:     "octocat",
		Repositories: []domain.Repository{{Name: "hello-world", OwnerLogin: "octocat"}},
	}
	model, _ := app.Update(messages.UserLoaded{Snapshot: snapshot})
	app = model.(*App)

	assert.Equal(t, messages.ViewResults, app.CurrentView())
	assert.Contains(t, app.View(), "octocat")
	assert.Contains(t, app.View(), "hello-world")
}

func TestApp_UserLoadedErrorStaysOnSearch(t *testing.T) {
	app := setupApp(t, testPorts())

	model, _ := app.Update(messages.UserLoaded{
		Err: &domain.APIError{StatusCode: 404, Message: `User "ghost" not found`},
	})
	app = model.(*App)

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.Contains(t, app.View(), `User "ghost" not found`)
}

func TestApp_RepoSelectedLoadsDetails(t *testing.T) {
	ports := testPorts()
	ports.Details = &stubDetailsService{
		result: &driving.RepoDetailsResult{
			Details: domain.RepositoryDetails{
				Repository: domain.Repository{Name: "hello-world"},
				FullName:   "octocat/hello-world",
			},
		},
	}
	app := setupApp(t, ports)

	model, cmd := app.Update(messages.RepoSelected{Owner: "octocat", Name: "hello-world"})
	app = model.(*App)
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewRepoDetails, app.CurrentView())

	model, _ = app.Update(cmd())
	app = model.(*App)
	assert.Contains(t, app.View(), "octocat/hello-world")
}

func TestApp_CachedDetailsShowNotice(t *testing.T) {
	ports := testPorts()
	ports.Details = &stubDetailsService{
		result: &driving.RepoDetailsResult{
			Details: domain.RepositoryDetails{
				Repository: domain.Repository{Name: "hello-world"},
				FullName:   "octocat/hello-world",
			},
			FromCache: true,
		},
	}
	app := setupApp(t, ports)

	model, cmd := app.Update(messages.RepoSelected{Owner: "octocat", Name: "hello-world"})
	app = model.(*App)
	model, _ = app.Update(cmd())
	app = model.(*App)

	assert.Contains(t, app.View(), "Showing cached data")
}

func TestApp_RepoDetailsError(t *testing.T) {
	ports := testPorts()
	ports.Details = &stubDetailsService{
		err: &domain.APIError{StatusCode: 404, Message: `Repository "octocat/ghost" not found`},
	}
	app := setupApp(t, ports)

	model, cmd := app.Update(messages.RepoSelected{Owner: "octocat", Name: "ghost"})
	app = model.(*App)
	model, _ = app.Update(cmd())
	app = model.(*App)

	require.Error(t, app.Err())
	assert.Contains(t, app.View(), `Repository "octocat/ghost" not found`)
}

func TestApp_ViewChangedBackToSearch(t *testing.T) {
	app := setupApp(t, testPorts())

	model, _ := app.Update(messages.UserLoaded{Snapshot: &domain.UserSnapshot{Username: "octocat"}})
	app = model.(*App)
	require.Equal(t, messages.ViewResults, app.CurrentView())

	model, _ = app.Update(messages.ViewChanged{View: messages.ViewSearch})
	app = model.(*App)
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_NetworkTransitionsReachViews(t *testing.T) {
	net := &stubNetwork{online: true}
	ports := testPorts()
	ports.Network = net
	app := setupApp(t, ports)
	app.Init()
	require.NotNil(t, net.subscriber)

	net.subscriber(false)
	model, cmd := app.Update(messages.NetworkStatusChanged{Online: false})
	app = model.(*App)

	// The listener is re-armed and the transition queued by the
	// subscriber is delivered through it.
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.NetworkStatusChanged)
	require.True(t, ok)
	assert.False(t, msg.Online)

	assert.Contains(t, app.View(), "OFFLINE")
}

func TestApp_QuitDetachesNetworkListener(t *testing.T) {
	net := &stubNetwork{online: true}
	ports := testPorts()
	ports.Network = net
	app := setupApp(t, ports)
	app.Init()

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, net.unsubscribed)
}
