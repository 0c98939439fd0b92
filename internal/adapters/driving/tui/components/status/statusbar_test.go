package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBar_Defaults(t *testing.T) {
	b := NewBar(nil, nil)

	assert.Equal(t, StateReady, b.State())
	assert.True(t, b.Online())
	assert.Contains(t, b.View(), "Ready")
}

func TestBar_OfflineBanner(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetOnline(false)
	assert.Contains(t, b.View(), "OFFLINE")

	b.SetOnline(true)
	assert.NotContains(t, b.View(), "OFFLINE")
}

func TestBar_States(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetState(StateLoading)
	assert.Contains(t, b.View(), "Loading")

	b.SetState(StateError)
	b.SetMessage("GitHub API rate limit exceeded")
	assert.Contains(t, b.View(), "GitHub API rate limit exceeded")

	b.SetState(StateResults)
	b.SetMessage("")
	b.SetResultCount(13)
	assert.Contains(t, b.View(), "13 repositories")
}

func TestBar_Clear(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetState(StateError)
	b.SetMessage("boom")
	b.SetResultCount(5)

	b.Clear()

	assert.Equal(t, StateReady, b.State())
	assert.Empty(t, b.Message())
	assert.Equal(t, 0, b.ResultCount())
}
