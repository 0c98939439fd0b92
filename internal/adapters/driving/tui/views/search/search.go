// Package search provides the username search view for the TUI.
package search

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/components/input"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/components/status"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/keymap"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/messages"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/styles"
	"github.com/octoview/octoview-cli/internal/core/domain"
	"github.com/octoview/octoview-cli/internal/core/ports/driving"
)

// suggestMinChars is how many characters the query needs before live
// suggestions are requested.
const suggestMinChars = 2

// suggestPerPage is how many suggestions are requested per keystroke.
const suggestPerPage = 5

// View is the username search view: a text input, live suggestions,
// and the recently searched users below it.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.UsernameInput
	statusbar *status.Bar

	searchService driving.UserSearchService
	ctx           context.Context

	suggestions []domain.UserSearchItem
	recent      []domain.UserSnapshot
	selected    int // cursor over the suggestion/recent rows, -1 = input

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.UserSearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewUsernameInput(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		selected:      -1,
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.recent = v.searchService.Recent()
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SuggestCompleted:
		// Discard suggestions for a query the user has already left.
		if msg.Query != strings.TrimSpace(v.input.Value()) {
			return v, nil
		}
		if msg.Err != nil {
			v.suggestions = nil
			return v, nil
		}
		v.suggestions = msg.Result.Users
		return v, nil

	case messages.UserLoaded:
		v.statusbar.SetState(status.StateReady)
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(errorMessage(msg.Err))
			return v, nil
		}
		v.err = nil
		return v, nil

	case messages.NetworkStatusChanged:
		v.statusbar.SetOnline(msg.Online)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEnter:
		username := v.selectedLogin()
		if username == "" {
			return v, nil
		}
		v.err = nil
		v.statusbar.SetState(status.StateLoading)
		return v, v.lookupUser(username)

	case tea.KeyUp:
		if v.selected > -1 {
			v.selected--
			if v.selected == -1 {
				v.input.Focus()
			}
		}
		return v, nil

	case tea.KeyDown:
		if v.selected < v.rowCount()-1 {
			if v.selected == -1 {
				v.input.Blur()
			}
			v.selected++
		}
		return v, nil
	}

	// Everything else edits the query.
	if v.selected != -1 {
		v.selected = -1
		v.input.Focus()
	}

	v.input, _ = v.input.Update(msg)

	query := strings.TrimSpace(v.input.Value())
	if len(query) < suggestMinChars {
		v.suggestions = nil
		return v, nil
	}
	return v, v.fetchSuggestions(query)
}

// selectedLogin returns the username the cursor points at: the typed
// query when the input is focused, otherwise the highlighted row.
func (v *View) selectedLogin() string {
	if v.selected == -1 {
		return strings.TrimSpace(v.input.Value())
	}
	if v.selected < len(v.suggestions) {
		return v.suggestions[v.selected].Login
	}
	idx := v.selected - len(v.suggestions)
	if idx < len(v.recent) {
		return v.recent[idx].Username
	}
	return ""
}

// rowCount is the number of selectable rows below the input.
func (v *View) rowCount() int {
	return len(v.suggestions) + len(v.recent)
}

// lookupUser resolves a username to a snapshot.
func (v *View) lookupUser(username string) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := v.searchService.Search(v.ctx, username)
		return messages.UserLoaded{Snapshot: snapshot, Err: err}
	}
}

// fetchSuggestions requests live suggestions for a partial query.
func (v *View) fetchSuggestions(query string) tea.Cmd {
	return func() tea.Msg {
		result, err := v.searchService.Suggest(v.ctx, query, suggestPerPage)
		return messages.SuggestCompleted{Query: query, Result: result, Err: err}
	}
}

// View renders the search view.
func (v *View) View() string {
	sections := make([]string, 0, 12)

	sections = append(sections, v.styles.Title.Render("Octoview"), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render(errorMessage(v.err)), "")
	}

	if len(v.suggestions) > 0 {
		sections = append(sections, v.styles.Subtitle.Render("Suggestions"))
		for i, item := range v.suggestions {
			sections = append(sections, v.renderRow(i, item.Login, ""))
		}
		sections = append(sections, "")
	}

	if len(v.recent) > 0 {
		sections = append(sections, v.styles.Subtitle.Render("Recent"))
		for i, snap := range v.recent {
			meta := fmt.Sprintf("%d repos", len(snap.Repositories))
			sections = append(sections, v.renderRow(len(v.suggestions)+i, snap.Username, meta))
		}
		sections = append(sections, "")
	}

	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderRow formats one selectable suggestion/recent row.
func (v *View) renderRow(index int, login, meta string) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}
	line := indicator + login
	if index == v.selected {
		line = v.styles.Selected.Render(line)
	} else {
		line = v.styles.Normal.Render(line)
	}
	if meta != "" {
		line += "  " + v.styles.Muted.Render(meta)
	}
	return line
}

// errorMessage picks a display message for a failed lookup.
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
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Reset returns the view to a fresh input state, reloading the recent
// users list.
func (v *View) Reset() {
	v.input.SetValue("")
	v.input.Focus()
	v.suggestions = nil
	v.recent = v.searchService.Recent()
	v.selected = -1
	v.err = nil
	v.statusbar.Clear()
}

// SetOnline updates the connectivity indicator.
func (v *View) SetOnline(online bool) {
	v.statusbar.SetOnline(online)
}

// Query returns the current input value.
func (v *View) Query() string {
	return v.input.Value()
}

// Suggestions returns the current suggestion rows.
func (v *View) Suggestions() []domain.UserSearchItem {
	return v.suggestions
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
