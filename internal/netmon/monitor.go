// Package netmon tracks whether the GitHub API is reachable.
//
// There is no platform event to listen to, so the monitor derives its
// state from observed request outcomes: the connector reports every
// success and failure, and an initial probe seeds the state before the
// first real request. The state is display-only; nothing gates a fetch
// on it.
package netmon

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/octoview/octoview-cli/internal/logger"
)

// DefaultProbeURL is the endpoint used by the initial connectivity probe.
const DefaultProbeURL = "https://api.github.com"

// probeTimeout bounds the initial probe so startup never hangs.
const probeTimeout = 5 * time.Second

// Monitor holds the current online/offline state and notifies
// subscribers on transitions.
type Monitor struct {
	mu     sync.Mutex
	online bool
	nextID int
	subs   map[int]func(bool)

	httpClient *http.Client
	probeURL   string
}

// NewMonitor creates a monitor that assumes connectivity until told
// otherwise.
func NewMonitor() *Monitor {
	return &Monitor{
		online:     true,
		subs:       make(map[int]func(bool)),
		httpClient: &http.Client{Timeout: probeTimeout},
		probeURL:   DefaultProbeURL,
	}
}

// Online reports the last observed connectivity state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe registers fn to be called on every online/offline
// transition. The returned function removes the subscription.
func (m *Monitor) Subscribe(fn func(online bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// RecordSuccess marks the API as reachable.
func (m *Monitor) RecordSuccess() {
	m.transition(true)
}

// RecordFailure marks the API as unreachable.
func (m *Monitor) RecordFailure() {
	m.transition(false)
}

// Probe performs a single reachability check against the API host and
// records the outcome. Any HTTP response counts as reachable; only a
// transport failure means offline.
func (m *Monitor) Probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, m.probeURL, nil)
	if err != nil {
		m.RecordFailure()
		return
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		logger.Warn("connectivity probe failed: %v", err)
		m.RecordFailure()
		return
	}
	resp.Body.Close()
	m.RecordSuccess()
}

func (m *Monitor) transition(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	if online {
		logger.Info("connectivity restored")
	} else {
		logger.Warn("connectivity lost")
	}
	for _, fn := range subs {
		fn(online)
	}
}
