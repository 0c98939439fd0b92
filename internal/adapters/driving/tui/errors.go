package tui

import "errors"

// ErrMissingSearchService is returned when the user search service is not provided.
var ErrMissingSearchService = errors.New("tui: user search service is required")

// ErrMissingPagerFactory is returned when the pager factory is not provided.
var ErrMissingPagerFactory = errors.New("tui: pager factory is required")

// ErrMissingDetailsService is returned when the repo details service is not provided.
var ErrMissingDetailsService = errors.New("tui: repo details service is required")
