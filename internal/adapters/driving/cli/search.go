package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/octoview/octoview-cli/internal/core/domain"
)

var (
	searchJSON    bool
	searchSuggest bool
)

var searchCmd = &cobra.Command{
	Use:   "search [username]",
	Short: "Look up a GitHub user",
	Long: `Looks up a GitHub user and prints their profile with the first
page of repositories. Repeated lookups in the same session are served
from the cache.

With --suggest the argument is treated as a partial query and matching
usernames are printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.Flags().BoolVar(&searchSuggest, "suggest", false, "print username suggestions for a partial query")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	if searchSuggest {
		return runSuggest(cmd, args[0])
	}

	snapshot, err := searchService.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, snapshot)
	}
	outputSnapshot(cmd, snapshot)
	return nil
}

func runSuggest(cmd *cobra.Command, query string) error {
	result, err := searchService.Suggest(cmd.Context(), query, 10)
	if err != nil {
		return fmt.Errorf("fetching suggestions: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, result)
	}
	if len(result.Users) == 0 {
		cmd.Println("No matching users.")
		return nil
	}
	cmd.Printf("Users matching %q:\n", query)
	for _, u := range result.Users {
		cmd.Printf("  %s\n", u.Login)
	}
	return nil
}

func outputSnapshot(cmd *cobra.Command, s *domain.UserSnapshot) {
	cmd.Println(s.Profile.Login)
	if s.Profile.Name != "" {
		cmd.Printf("  Name:      %s\n", s.Profile.Name)
	}
	if s.Profile.Bio != "" {
		cmd.Printf("  Bio:       %s\n", s.Profile.Bio)
	}
	if s.Profile.Location != "" {
		cmd.Printf("  Location:  %s\n", s.Profile.Location)
	}
	cmd.Printf("  Followers: %d  Following: %d\n", s.Profile.Followers, s.Profile.Following)
	cmd.Printf("  Repos:     %d  Total stars: %d\n", s.Profile.PublicRepos, s.TotalStars)

	if len(s.Repositories) == 0 {
		return
	}
	cmd.Println()
	cmd.Printf("Repositories (first %d):\n", len(s.Repositories))
	for _, r := range s.Repositories {
		line := fmt.Sprintf("  %-30s ★ %-6d", r.Name, r.Stars)
		if r.Language != "" {
			line += "  " + r.Language
		}
		cmd.Println(line)
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
