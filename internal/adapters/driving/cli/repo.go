package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/octoview/octoview-cli/internal/core/ports/driving"
)

var repoJSON bool

var repoCmd = &cobra.Command{
	Use:   "repo [owner/name]",
	Short: "Show details for a repository",
	Long: `Shows the full detail payload for a repository.

When the live fetch fails and a copy from earlier in the session is
available, the cached copy is shown with a note.`,
	Args: cobra.ExactArgs(1),
	RunE: runRepo,
}

func init() {
	repoCmd.Flags().BoolVar(&repoJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(repoCmd)
}

func runRepo(cmd *cobra.Command, args []string) error {
	if detailsService == nil {
		return errors.New("details service not configured")
	}

	owner, name, ok := strings.Cut(args[0], "/")
	if !ok || owner == "" || name == "" {
		return fmt.Errorf("invalid repository %q, expected owner/name", args[0])
	}

	result, err := detailsService.Get(cmd.Context(), owner, name)
	if err != nil {
		return fmt.Errorf("fetching repository: %w", err)
	}

	if repoJSON {
		return outputJSON(cmd, result)
	}
	outputDetails(cmd, result)
	return nil
}

func outputDetails(cmd *cobra.Command, result *driving.RepoDetailsResult) {
	d := result.Details

	cmd.Println(d.FullName)
	if result.FromCache {
		cmd.Println("  (showing cached data, live fetch failed)")
	}
	if d.Description != "" {
		cmd.Printf("  %s\n", d.Description)
	}
	cmd.Printf("  Stars: %d  Forks: %d  Watchers: %d\n", d.Stars, d.Forks, d.Watchers)
	if d.Language != "" {
		cmd.Printf("  Language:       %s\n", d.Language)
	}
	cmd.Printf("  Default branch: %s\n", d.DefaultBranch)
	cmd.Printf("  Created:        %s\n", d.CreatedAt.Format("2006-01-02"))
	cmd.Printf("  Updated:        %s\n", d.UpdatedAt.Format("2006-01-02"))
	if len(d.Topics) > 0 {
		cmd.Printf("  Topics:         %s\n", strings.Join(d.Topics, ", "))
	}
	if d.Homepage != "" {
		cmd.Printf("  Homepage:       %s\n", d.Homepage)
	}
	if d.URL != "" {
		cmd.Printf("  URL:            %s\n", d.URL)
	}
}
