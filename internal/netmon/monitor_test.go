package netmon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_StartsOnline(t *testing.T) {
	m := NewMonitor()
	assert.True(t, m.Online())
}

func TestMonitor_RecordOutcomes(t *testing.T) {
	m := NewMonitor()

	m.RecordFailure()
	assert.False(t, m.Online())

	m.RecordSuccess()
	assert.True(t, m.Online())
}

func TestMonitor_SubscribersSeeTransitionsOnly(t *testing.T) {
	m := NewMonitor()

	var calls []bool
	m.Subscribe(func(online bool) {
		calls = append(calls, online)
	})

	// Already online: no transition, no notification.
	m.RecordSuccess()
	assert.Empty(t, calls)

	m.RecordFailure()
	m.RecordFailure()
	m.RecordSuccess()
	assert.Equal(t, []bool{false, true}, calls)
}

func TestMonitor_Unsubscribe(t *testing.T) {
	m := NewMonitor()

	calls := 0
	unsubscribe := m.Subscribe(func(bool) { calls++ })

	m.RecordFailure()
	require.Equal(t, 1, calls)

	unsubscribe()
	m.RecordSuccess()
	assert.Equal(t, 1, calls)
}

func TestMonitor_Probe(t *testing.T) {
	t.Run("reachable host", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		m := NewMonitor()
		m.probeURL = server.URL
		m.RecordFailure()

		// Any HTTP response means reachable, even an error status.
		m.Probe(context.Background())
		assert.True(t, m.Online())
	})

	t.Run("unreachable host", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		m := NewMonitor()
		m.probeURL = server.URL

		m.Probe(context.Background())
		assert.False(t, m.Online())
	})
}
