// Package cli provides the command-line interface for octoview.
// It is a driving adapter: commands consume core services through the
// driving ports and never reach into adapters directly.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/octoview/octoview-cli/internal/core/ports/driving"
	"github.com/octoview/octoview-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagToken     string
	flagConfigDir string
)

// Package-level services shared by the commands. Wired once by
// bootstrap on first run; tests inject fakes via SetServices.
var (
	searchService  driving.UserSearchService
	pagerFactory   driving.PagerFactory
	detailsService driving.RepoDetailsService
)

// rootCmd is the base command for octoview.
var rootCmd = &cobra.Command{
	Use:   "octoview",
	Short: "Browse GitHub users and repositories from the terminal",
	Long: `Octoview is a terminal client for browsing GitHub.

Search for users, page through their repositories and inspect
individual repositories. Results from the current session are cached,
so repeated lookups are instant and recently viewed data stays
available when the network drops.

Run without arguments to launch the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		if searchService != nil {
			return nil
		}
		return bootstrap(cmd.Context())
	},
	RunE: runBrowse,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "GitHub personal access token")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.octoview)")
}

// Services bundles the driving ports the commands run against.
type Services struct {
	Search  driving.UserSearchService
	Pagers  driving.PagerFactory
	Details driving.RepoDetailsService
	Network networkFeed
}

// SetServices replaces the wired services. Used by tests.
func SetServices(s *Services) {
	searchService = s.Search
	pagerFactory = s.Pagers
	detailsService = s.Details
	network = s.Network
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	defer closeSession()
	return rootCmd.ExecuteContext(ctx)
}
