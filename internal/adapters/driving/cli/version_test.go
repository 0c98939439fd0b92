package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsVersion(t *testing.T) {
	cleanup := setupTestServices(&fakeSearchService{}, &fakeDetailsService{})
	defer cleanup()

	SetVersion("1.2.3")
	defer SetVersion("dev")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "octoview version 1.2.3\n", buf.String())
}
