// Package repodetails provides the repository detail view.
package repodetails

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/keymap"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/messages"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/styles"
	"github.com/octoview/octoview-cli/internal/core/domain"
	"github.com/octoview/octoview-cli/internal/core/ports/driving"
)

// View shows the full detail payload for one repository. When the live
// fetch failed and a cached copy was served instead, a notice says so.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	details   *domain.RepositoryDetails
	fromCache bool
	err       error

	width  int
	height int
}

// NewView creates a new repository detail view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetResult binds the view to a loaded detail payload.
func (v *View) SetResult(result *driving.RepoDetailsResult) {
	v.details = &result.Details
	v.fromCache = result.FromCache
	v.err = nil
}

// SetError shows a load failure instead of a payload.
func (v *View) SetError(err error) {
	v.details = nil
	v.fromCache = false
	v.err = err
}

// Reset clears the view back to its loading state.
func (v *View) Reset() {
	v.details = nil
	v.fromCache = false
	v.err = nil
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewResults}
			}
		}
	}
	return v, nil
}

// View renders the detail view.
func (v *View) View() string {
	if v.err != nil {
		return v.styles.Error.Render(errorMessage(v.err)) + "\n\n" +
			v.styles.Help.Render("esc: back")
	}
	if v.details == nil {
		return v.styles.Muted.Render("Loading repository...")
	}

	d := v.details
	sections := make([]string, 0, 12)

	sections = append(sections, v.styles.Title.Render(d.FullName))
	if v.fromCache {
		sections = append(sections, v.styles.Notice.Render("Showing cached data"))
	}
	sections = append(sections, "")

	if d.Description != "" {
		sections = append(sections, v.styles.Normal.Render(d.Description), "")
	}

	meta := fmt.Sprintf("★ %d · %d forks · %d watchers", d.Stars, d.Forks, d.Watchers)
	sections = append(sections, v.styles.Muted.Render(meta))

	facts := []string{fmt.Sprintf("default branch: %s", d.DefaultBranch)}
	if d.Language != "" {
		facts = append(facts, "language: "+d.Language)
	}
	if !d.CreatedAt.IsZero() {
		facts = append(facts, "created: "+d.CreatedAt.Format("2006-01-02"))
	}
	if !d.UpdatedAt.IsZero() {
		facts = append(facts, "updated: "+d.UpdatedAt.Format("2006-01-02"))
	}
	sections = append(sections, v.styles.Muted.Render(strings.Join(facts, " · ")))

	if len(d.Topics) > 0 {
		sections = append(sections, v.styles.Subtitle.Render(strings.Join(d.Topics, " ")))
	}
	if d.Homepage != "" {
		sections = append(sections, v.styles.Muted.Render(d.Homepage))
	}
	if d.URL != "" {
		sections = append(sections, v.styles.Muted.Render(d.URL))
	}

	sections = append(sections, "", v.styles.Help.Render("esc: back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// errorMessage picks a display message for a failed load.
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
}

// Details returns the displayed payload, if any.
func (v *View) Details() *domain.RepositoryDetails {
	return v.details
}

// FromCache reports whether the payload came from the session cache.
func (v *View) FromCache() bool {
	return v.fromCache
}
