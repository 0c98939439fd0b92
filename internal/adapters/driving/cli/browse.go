package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/octoview/octoview-cli/internal/adapters/driving/tui"
)

// browseCmd launches the interactive browser. It is also the default
// action when octoview runs without a subcommand.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive GitHub browser",
	Long: `Launch the interactive terminal user interface.

Type a username to see live suggestions, pick one to browse the user's
repositories, and open a repository for its details. Scrolling near the
end of the list loads the next page automatically.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Search / Select
  n        - Cycle name sort
  s        - Cycle star sort
  x        - Dismiss a pagination error
  Esc      - Back
  Ctrl+C   - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a TUI crash leaves a usable stack trace
	// instead of a corrupted terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(searchService, pagerFactory, detailsService, network)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("creating TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
