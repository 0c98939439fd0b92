package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/keymap"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/messages"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/styles"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/views/repodetails"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/views/results"
	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/views/search"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// searchView is the username search view.
	searchView *search.View

	// resultsView shows a user's profile and repositories.
	resultsView *results.View

	// detailsView shows a single repository's details.
	detailsView *repodetails.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// netCh receives online/offline transitions from the monitor.
	netCh chan bool

	// unsubscribe detaches the network listener on quit.
	unsubscribe func()

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		searchView:  search.NewView(s, km, ports.Search),
		resultsView: results.NewView(s, km, ports.Pagers),
		detailsView: repodetails.NewView(s, km),
		currentView: messages.ViewSearch,
		netCh:       make(chan bool, 4),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.resultsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("octoview - GitHub browser"),
		a.searchView.Init(),
	}
	if a.ports.Network != nil {
		a.unsubscribe = a.ports.Network.Subscribe(func(online bool) {
			a.netCh <- online
		})
		a.applyOnline(a.ports.Network.Online())
		cmds = append(cmds, a.listenNetwork())
	}
	return tea.Batch(cmds...)
}

// listenNetwork waits for the next connectivity transition.
func (a *App) listenNetwork() tea.Cmd {
	return func() tea.Msg {
		online, ok := <-a.netCh
		if !ok {
			return nil
		}
		return messages.NetworkStatusChanged{Online: online}
	}
}

// applyOnline pushes the connectivity state into every view.
func (a *App) applyOnline(online bool) {
	a.searchView.SetOnline(online)
	a.resultsView.SetOnline(online)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.resultsView.SetDimensions(msg.Width, msg.Height)
		a.detailsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if a.unsubscribe != nil {
				a.unsubscribe()
			}
			return a, tea.Quit
		}
		return a.forward(msg)

	case messages.NetworkStatusChanged:
		a.applyOnline(msg.Online)
		return a, a.listenNetwork()

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewSearch {
			a.searchView.Reset()
			return a, a.searchView.Init()
		}
		return a, nil

	case messages.UserLoaded:
		// The search view shows the error; success navigates to results.
		if msg.Err == nil && msg.Snapshot != nil {
			a.resultsView.SetUser(msg.Snapshot)
			a.currentView = messages.ViewResults
			return a, nil
		}
		a.err = msg.Err
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.RepoSelected:
		a.currentView = messages.ViewRepoDetails
		a.detailsView.Reset()
		return a, a.loadRepoDetails(msg.Owner, msg.Name)

	case messages.RepoDetailsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.detailsView.SetError(msg.Err)
			return a, nil
		}
		a.detailsView.SetResult(msg.Result)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.forward(msg)

	case messages.Quit:
		if a.unsubscribe != nil {
			a.unsubscribe()
		}
		return a, tea.Quit
	}

	return a.forward(msg)
}

// forward routes a message to the active view.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	case messages.ViewRepoDetails:
		a.detailsView, cmd = a.detailsView.Update(msg)
	}
	return a, cmd
}

// loadRepoDetails fetches the detail payload for a repository.
func (a *App) loadRepoDetails(owner, name string) tea.Cmd {
	return func() tea.Msg {
		result, err := a.ports.Details.Get(a.ctx, owner, name)
		return messages.RepoDetailsLoaded{Result: result, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewResults:
		return a.resultsView.View()
	case messages.ViewRepoDetails:
		return a.detailsView.View()
	default:
		return a.searchView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.resultsView.SetDimensions(width, height)
	a.detailsView.SetDimensions(width, height)
}
