package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidUsername indicates the username fails GitHub's naming rules.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrInvalidQuery indicates the search query was rejected upstream.
	ErrInvalidQuery = errors.New("invalid search query")

	// ErrFetchInFlight indicates a continuation fetch is already running.
	ErrFetchInFlight = errors.New("fetch already in flight")

	// ErrNoMorePages indicates pagination has reached the last known page.
	ErrNoMorePages = errors.New("no more pages")
)
