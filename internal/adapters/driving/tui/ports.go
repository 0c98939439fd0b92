// Package tui provides an interactive terminal user interface for octoview.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/octoview/octoview-cli/internal/core/ports/driving"
)

// NetworkStatus is the connectivity feed consumed by the status bars.
// The netmon package implements it; a nil feed means always online.
type NetworkStatus interface {
	Online() bool
	Subscribe(fn func(online bool)) (unsubscribe func())
}

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search resolves usernames and suggestions.
	Search driving.UserSearchService

	// Pagers creates repository pagers for the results view.
	Pagers driving.PagerFactory

	// Details fetches repository detail payloads.
	Details driving.RepoDetailsService

	// Network feeds online/offline transitions. Optional.
	Network NetworkStatus
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.UserSearchService,
	pagers driving.PagerFactory,
	details driving.RepoDetailsService,
	network NetworkStatus,
) *Ports {
	return &Ports{
		Search:  search,
		Pagers:  pagers,
		Details: details,
		Network: network,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Pagers == nil {
		return ErrMissingPagerFactory
	}
	if p.Details == nil {
		return ErrMissingDetailsService
	}
	return nil
}
