// Package github implements the GitHub REST gateway.
//
// The gateway is the driven adapter behind [driven.Gateway]. It wraps
// the go-github client with rate limiting and maps API failures onto
// the typed errors the core matches on.
//
// # Components
//
//   - Client: go-github client lifecycle, authentication and rate limiting
//   - Gateway: the four read operations the core needs
//   - RateLimiter: dual-strategy throttling against the 5,000/hour quota
//
// # Authentication
//
// A personal access token raises the quota to 5,000 requests per hour.
// Without a token the client runs unauthenticated at 60 per hour, which
// is enough for casual browsing.
package github
