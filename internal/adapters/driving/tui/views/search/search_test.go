package search

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/messages"
	"github.com/octoview/octoview-cli/internal/core/domain"
)

// fakeSearchService scripts the search port for view tests.
type fakeSearchService struct {
	snapshot    *domain.UserSnapshot
	searchErr   error
	suggestions *domain.UserSearchResult
	suggestErr  error
	recent      []domain.UserSnapshot

	searched  []string
	suggested []string
}

func (f *fakeSearchService) Search(_ context.Context, username string) (*domain.UserSnapshot, error) {
	f.searched = append(f.searched, username)
	return f.snapshot, f.searchErr
}

func (f *fakeSearchService) Suggest(_ context.Context, query string, _ int) (*domain.UserSearchResult, error) {
	f.suggested = append(f.suggested, query)
	return f.suggestions, f.suggestErr
}

func (f *fakeSearchService) Recent() []domain.UserSnapshot {
	return f.recent
}

func (f *fakeSearchService) ClearRecent() {
	f.recent = nil
}

func typeString(v *View, s string) (*View, tea.Cmd) {
	var cmd tea.Cmd
	for _, r := range s {
		v, cmd = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v, cmd
}

func TestView_InitLoadsRecent(t *testing.T) {
	svc := &fakeSearchService{
		recent: []domain.UserSnapshot{{Username: "octocat"}, {Username: "torvalds"}},
	}
	v := NewView(nil, nil, svc)
	v.Init()
	v.SetDimensions(100, 40)

	view := v.View()
	assert.Contains(t, view, "Recent")
	assert.Contains(t, view, "octocat")
	assert.Contains(t, view, "torvalds")
}

func TestView_TypingRequestsSuggestions(t *testing.T) {
	svc := &fakeSearchService{
		suggestions: &domain.UserSearchResult{
			Users: []domain.UserSearchItem{{Login: "octocat"}},
		},
	}
	v := NewView(nil, nil, svc)
	v.Init()

	// A single character stays below the suggestion threshold.
	v, cmd := typeString(v, "o")
	assert.Nil(t, cmd)

	v, cmd = typeString(v, "c")
	require.NotNil(t, cmd)

	msg := cmd()
	suggestMsg, ok := msg.(messages.SuggestCompleted)
	require.True(t, ok)
	assert.Equal(t, "oc", suggestMsg.Query)

	v, _ = v.Update(suggestMsg)
	assert.Contains(t, v.View(), "Suggestions")
	assert.Len(t, v.Suggestions(), 1)
}

func TestView_StaleSuggestionsDiscarded(t *testing.T) {
	svc := &fakeSearchService{}
	v := NewView(nil, nil, svc)
	v.Init()

	v, _ = typeString(v, "octo")

	// A response for an earlier query arrives after more typing.
	v, _ = v.Update(messages.SuggestCompleted{
		Query:  "oc",
		Result: &domain.UserSearchResult{Users: []domain.UserSearchItem{{Login: "stale"}}},
	})

	assert.Empty(t, v.Suggestions())
}

func TestView_EnterSearchesTypedQuery(t *testing.T) {
	svc := &fakeSearchService{
		snapshot: &domain.UserSnapshot{Username: "octocat"},
	}
	v := NewView(nil, nil, svc)
	v.Init()

	v, _ = typeString(v, "octocat")
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.UserLoaded)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, "octocat", msg.Snapshot.Username)
	assert.Equal(t, []string{"octocat"}, svc.searched)
}

func TestView_EnterOnRecentRowSearchesThatUser(t *testing.T) {
	svc := &fakeSearchService{
		recent:   []domain.UserSnapshot{{Username: "torvalds"}},
		snapshot: &domain.UserSnapshot{Username: "torvalds"},
	}
	v := NewView(nil, nil, svc)
	v.Init()

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	cmd()
	assert.Equal(t, []string{"torvalds"}, svc.searched)
}

func TestView_SearchFailureShowsMessage(t *testing.T) {
	svc := &fakeSearchService{
		searchErr: &domain.APIError{StatusCode: 404, Message: `User "ghost" not found`},
	}
	v := NewView(nil, nil, svc)
	v.Init()
	v.SetDimensions(100, 40)

	v, _ = typeString(v, "ghost")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	v, _ = v.Update(cmd())
	assert.Contains(t, v.View(), `User "ghost" not found`)
}

func TestView_ResetReloadsRecent(t *testing.T) {
	svc := &fakeSearchService{}
	v := NewView(nil, nil, svc)
	v.Init()

	v, _ = typeString(v, "oc")
	svc.recent = []domain.UserSnapshot{{Username: "octocat"}}

	v.Reset()

	assert.Empty(t, v.Query())
	assert.Empty(t, v.Suggestions())
	v.SetDimensions(100, 40)
	assert.Contains(t, v.View(), "octocat")
}
