// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/octoview/octoview-cli/internal/core/domain"
	"github.com/octoview/octoview-cli/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the username search view.
	ViewSearch ViewType = iota
	// ViewResults shows a user's profile and repository list.
	ViewResults
	// ViewRepoDetails shows a single repository's detail payload.
	ViewRepoDetails
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewResults:
		return "results"
	case ViewRepoDetails:
		return "repo_details"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SuggestCompleted carries user-search suggestions back to the model.
type SuggestCompleted struct {
	Query  string
	Result *domain.UserSearchResult
	Err    error
}

// UserLoaded carries a resolved user snapshot back to the model.
type UserLoaded struct {
	Snapshot *domain.UserSnapshot
	Err      error
}

// PageLoaded signals that a continuation fetch settled. The pager
// already holds the outcome; the message just triggers a re-render.
type PageLoaded struct{}

// SortApplied signals that a server-driven sort change settled.
type SortApplied struct {
	Err error
}

// RepoSelected signals a repository was chosen from the list.
type RepoSelected struct {
	Owner string
	Name  string
}

// RepoDetailsLoaded carries a repository detail payload.
type RepoDetailsLoaded struct {
	Result *driving.RepoDetailsResult
	Err    error
}

// NetworkStatusChanged signals an online/offline transition.
type NetworkStatusChanged struct {
	Online bool
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
