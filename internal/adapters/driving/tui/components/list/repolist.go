// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/styles"
	"github.com/octoview/octoview-cli/internal/core/domain"
)

// ContinuationThreshold is how close to the end of the list the cursor
// must be before another page is requested.
const ContinuationThreshold = 2

// RepoList displays a user's repositories in a navigable list. The list
// grows as continuation pages arrive; a footer row marks the loading
// and end-of-list states.
type RepoList struct {
	repos    []domain.Repository
	selected int
	styles   *styles.Styles
	width    int
	height   int

	loading bool
	hasMore bool
}

// NewRepoList creates a new repository list component.
func NewRepoList(s *styles.Styles) *RepoList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RepoList{
		styles: s,
		width:  80,
		height: 15,
	}
}

// Init initialises the repository list.
func (r *RepoList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RepoList) Update(msg tea.Msg) (*RepoList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the repository list.
func (r *RepoList) View() string {
	if len(r.repos) == 0 {
		if r.loading {
			return r.styles.Muted.Render("Loading repositories...")
		}
		return r.styles.Muted.Render("No repositories")
	}

	lines := make([]string, 0, len(r.repos)*2+3)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Repositories (%d)", len(r.repos)))
	lines = append(lines, header, "")

	// Each entry takes two lines (title + description).
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.repos) {
		end = len(r.repos)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRepo(i, &r.repos[i]))
	}

	if footer := r.renderFooter(); footer != "" {
		lines = append(lines, footer)
	}

	return strings.Join(lines, "\n")
}

// renderRepo formats a single repository entry.
func (r *RepoList) renderRepo(index int, repo *domain.Repository) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	name := repo.Name
	maxNameLen := r.width - 24
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	meta := fmt.Sprintf("★ %d", repo.Stars)
	if repo.Language != "" {
		meta += "  " + repo.Language
	}

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxNameLen, name, meta))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxNameLen, name)) +
			r.styles.Muted.Render(meta)
	}

	desc := repo.Description
	maxDescLen := r.width - 6
	if maxDescLen < 20 {
		maxDescLen = 20
	}
	if len(desc) > maxDescLen {
		desc = desc[:maxDescLen-3] + "..."
	}
	descLine := r.styles.Muted.Render("    " + desc)

	return titleLine + "\n" + descLine
}

// renderFooter renders the loading / end-of-list row.
func (r *RepoList) renderFooter() string {
	switch {
	case r.loading:
		return r.styles.Muted.Render("  Loading more...")
	case !r.hasMore:
		return r.styles.Muted.Render("  End of list")
	default:
		return ""
	}
}

// SetRepos replaces the list contents, clamping the cursor.
func (r *RepoList) SetRepos(repos []domain.Repository) {
	r.repos = repos
	if r.selected >= len(repos) {
		r.selected = len(repos) - 1
	}
	if r.selected < 0 {
		r.selected = 0
	}
}

// Repos returns the current repositories.
func (r *RepoList) Repos() []domain.Repository {
	return r.repos
}

// Selected returns the index of the selected repository.
func (r *RepoList) Selected() int {
	return r.selected
}

// SelectedRepo returns the currently selected repository, or nil if none.
func (r *RepoList) SelectedRepo() *domain.Repository {
	if len(r.repos) == 0 || r.selected < 0 || r.selected >= len(r.repos) {
		return nil
	}
	return &r.repos[r.selected]
}

// ResetCursor moves the selection back to the top.
func (r *RepoList) ResetCursor() {
	r.selected = 0
}

// MoveUp moves selection up.
func (r *RepoList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RepoList) MoveDown() {
	if r.selected < len(r.repos)-1 {
		r.selected++
	}
}

// NearEnd reports whether the cursor sits within the continuation
// threshold of the last loaded row. This is the scroll-proximity
// trigger: the results view requests the next page when it turns true.
func (r *RepoList) NearEnd() bool {
	if len(r.repos) == 0 {
		return false
	}
	return r.selected >= len(r.repos)-1-ContinuationThreshold
}

// SetLoading marks whether a continuation fetch is in flight.
func (r *RepoList) SetLoading(loading bool) {
	r.loading = loading
}

// SetHasMore marks whether another page is known to exist.
func (r *RepoList) SetHasMore(hasMore bool) {
	r.hasMore = hasMore
}

// SetDimensions sets the component dimensions.
func (r *RepoList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of repositories.
func (r *RepoList) Count() int {
	return len(r.repos)
}

// IsEmpty returns whether the list is empty.
func (r *RepoList) IsEmpty() bool {
	return len(r.repos) == 0
}
