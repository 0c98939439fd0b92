package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently searched users",
	Long: `Lists the users cached in the current session, most recently
searched first. With a file-backed session the list survives restarts.`,
	Args: cobra.NoArgs,
	RunE: runRecent,
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the recent search history",
	Args:  cobra.NoArgs,
	RunE:  runRecentClear,
}

func init() {
	recentCmd.AddCommand(recentClearCmd)
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	recent := searchService.Recent()
	if len(recent) == 0 {
		cmd.Println("No recent searches.")
		return nil
	}

	cmd.Println("Recent searches:")
	for _, snap := range recent {
		cmd.Printf("  %-20s %d repos, ★ %d\n", snap.Profile.Login, len(snap.Repositories), snap.TotalStars)
	}
	return nil
}

func runRecentClear(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	searchService.ClearRecent()
	cmd.Println("Recent searches cleared.")
	return nil
}
