// Package results provides the user profile and repository list view.
//
// The view owns a repository pager for the displayed user. Moving the
// cursor close to the end of the loaded list requests the next page;
// a failed continuation shows a dismissible notice above the list and
// pauses further requests until dismissed.
package results

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/components/list"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/components/status"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/keymap"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/messages"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/styles"
	"github.com/octoview/octoview-cli/internal/core/domain"
	"github.com/octoview/octoview-cli/internal/core/ports/driving"
)

// View shows one user's profile card and their repository list.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.RepoList
	statusbar *status.Bar

	factory driving.PagerFactory
	pager   driving.RepoPager
	ctx     context.Context

	user      *domain.UserSnapshot
	sortError string

	width  int
	height int
}

// NewView creates a new results view.
func NewView(s *styles.Styles, km *keymap.KeyMap, factory driving.PagerFactory) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		list:      list.NewRepoList(s),
		statusbar: status.NewBar(s, km),
		factory:   factory,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetUser binds the view to a freshly searched user. Any previous
// pager is invalidated so its in-flight fetches cannot land here.
func (v *View) SetUser(snapshot *domain.UserSnapshot) {
	if v.pager != nil {
		v.pager.Invalidate()
	}
	v.user = snapshot
	v.pager = v.factory.NewPager(*snapshot)
	v.sortError = ""
	v.list.ResetCursor()
	v.syncFromPager()
	v.statusbar.SetState(status.StateResults)
}

// Leave detaches the view from its user before navigating away.
func (v *View) Leave() {
	if v.pager != nil {
		v.pager.Invalidate()
		v.pager = nil
	}
	v.user = nil
}

// Update handles messages for the results view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.PageLoaded:
		v.syncFromPager()
		return v, nil

	case messages.SortApplied:
		if msg.Err != nil {
			v.sortError = errorMessage(msg.Err)
		} else {
			v.sortError = ""
			v.list.ResetCursor()
		}
		v.syncFromPager()
		return v, nil

	case messages.NetworkStatusChanged:
		v.statusbar.SetOnline(msg.Online)
		return v, nil
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.pager == nil {
		return v, nil
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		v.Leave()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}

	case tea.KeyEnter:
		repo := v.list.SelectedRepo()
		if repo == nil {
			return v, nil
		}
		owner := repo.OwnerLogin
		name := repo.Name
		return v, func() tea.Msg {
			return messages.RepoSelected{Owner: owner, Name: name}
		}

	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil

	case tea.KeyDown:
		v.list.MoveDown()
		return v, v.maybeRequestNextPage()
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
		return v, v.maybeRequestNextPage()

	case keymap.Matches(msg.String(), v.keymap.SortName):
		return v, v.cycleNameSort()

	case keymap.Matches(msg.String(), v.keymap.SortStars):
		v.cycleStarSort()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Dismiss):
		v.pager.DismissError()
		v.syncFromPager()
		// The cursor may still sit in the trigger zone.
		return v, v.maybeRequestNextPage()
	}

	return v, nil
}

// maybeRequestNextPage issues a continuation fetch when the cursor is
// near the end of the loaded list. The pager's own guards refuse the
// request while a fetch is in flight, an error is pending, or no more
// pages exist.
func (v *View) maybeRequestNextPage() tea.Cmd {
	if !v.list.NearEnd() {
		return nil
	}
	pager := v.pager
	v.list.SetLoading(true)
	return func() tea.Msg {
		pager.RequestNextPage(v.ctx)
		return messages.PageLoaded{}
	}
}

// cycleNameSort advances the server-driven sort to its next state.
func (v *View) cycleNameSort() tea.Cmd {
	var next domain.NameSort
	switch v.pager.NameSort() {
	case domain.NameSortNone:
		next = domain.NameSortAsc
	case domain.NameSortAsc:
		next = domain.NameSortDesc
	default:
		next = domain.NameSortNone
	}

	pager := v.pager
	v.list.SetLoading(true)
	return func() tea.Msg {
		err := pager.ChangeNameSort(v.ctx, next)
		return messages.SortApplied{Err: err}
	}
}

// cycleStarSort advances the local star sort. No fetch happens.
func (v *View) cycleStarSort() {
	var next domain.StarSort
	switch v.pager.StarSort() {
	case domain.StarSortNone:
		next = domain.StarSortDesc
	case domain.StarSortDesc:
		next = domain.StarSortAsc
	default:
		next = domain.StarSortNone
	}
	v.pager.SetStarSort(next)
	v.syncFromPager()
}

// syncFromPager refreshes the list and status bar from pager state.
func (v *View) syncFromPager() {
	if v.pager == nil {
		return
	}
	v.list.SetRepos(v.pager.Repositories())
	v.list.SetLoading(v.pager.IsFetching())
	v.list.SetHasMore(v.pager.HasMore())
	v.statusbar.SetResultCount(v.list.Count())
}

// View renders the results view.
func (v *View) View() string {
	if v.user == nil {
		return v.styles.Muted.Render("No user selected")
	}

	sections := make([]string, 0, 10)

	sections = append(sections, v.renderProfile(), "")

	if v.sortError != "" {
		sections = append(sections, v.styles.Error.Render(v.sortError), "")
	}

	if notice := v.pager.PaginationError(); notice != "" {
		help := v.styles.Muted.Render(" (x to dismiss)")
		sections = append(sections, v.styles.Notice.Render(notice)+help, "")
	}

	sections = append(sections, v.list.View(), "")
	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderProfile renders the user's profile card.
func (v *View) renderProfile() string {
	p := v.user.Profile

	login := p.Login
	if login == "" {
		login = v.user.Username
	}
	title := v.styles.Title.Render(login)
	if p.Name != "" {
		title += "  " + v.styles.Muted.Render(p.Name)
	}

	lines := []string{title}
	if p.Bio != "" {
		lines = append(lines, v.styles.Normal.Render(p.Bio))
	}

	meta := fmt.Sprintf("%d followers · %d following · %d public repos · ★ %d total",
		p.Followers, p.Following, p.PublicRepos, v.user.TotalStars)
	lines = append(lines, v.styles.Muted.Render(meta))

	if p.Location != "" {
		lines = append(lines, v.styles.Muted.Render(p.Location))
	}

	sortLine := fmt.Sprintf("sort: %s / %s", v.pager.NameSort(), v.pager.StarSort())
	lines = append(lines, v.styles.Help.Render(sortLine))

	return v.styles.Border.Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// errorMessage picks a display message for a failed sort refetch.
func errorMessage(err error) string {
	if apiErr, ok := domain.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-12)
	v.statusbar.SetWidth(width)
}

// SetOnline updates the connectivity indicator.
func (v *View) SetOnline(online bool) {
	v.statusbar.SetOnline(online)
}

// User returns the displayed snapshot.
func (v *View) User() *domain.UserSnapshot {
	return v.user
}

// Pager returns the view's pager.
func (v *View) Pager() driving.RepoPager {
	return v.pager
}

// SelectedRepo returns the repository under the cursor.
func (v *View) SelectedRepo() *domain.Repository {
	return v.list.SelectedRepo()
}
