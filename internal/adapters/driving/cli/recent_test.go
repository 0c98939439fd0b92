package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octoview/octoview-cli/internal/core/domain"
)

func TestRecentCmd_EmptyHistory(t *testing.T) {
	cleanup := setupTestServices(&fakeSearchService{}, &fakeDetailsService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recent"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No recent searches.")
}

func TestRecentCmd_ListsMostRecentFirst(t *testing.T) {
	search := &fakeSearchService{
		recent: []domain.UserSnapshot{
			{Profile: domain.UserProfile{Login: "torvalds"}, TotalStars: 90},
			{Profile: domain.UserProfile{Login: "octocat"}, TotalStars: 54},
		},
	}
	cleanup := setupTestServices(search, &fakeDetailsService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recent"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Less(t, bytes.Index([]byte(out), []byte("torvalds")), bytes.Index([]byte(out), []byte("octocat")))
}

func TestRecentClearCmd(t *testing.T) {
	search := &fakeSearchService{
		recent: []domain.UserSnapshot{{Profile: domain.UserProfile{Login: "octocat"}}},
	}
	cleanup := setupTestServices(search, &fakeDetailsService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recent", "clear"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, search.cleared)
	assert.Contains(t, buf.String(), "Recent searches cleared.")
}
