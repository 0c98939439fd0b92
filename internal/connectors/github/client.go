package github

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/octoview/octoview-cli/internal/core/domain"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client wraps the go-github client with rate limiting and error
// mapping. The underlying client is built lazily on first use.
type Client struct {
	gh          *gh.Client
	token       string
	rateLimiter *RateLimiter
}

// NewClient creates a GitHub API client. An empty token means
// unauthenticated access at the anonymous quota.
func NewClient(token string) *Client {
	limit := AuthenticatedRateLimit
	if token == "" {
		limit = AnonymousRateLimit
	}
	return &Client{
		token:       token,
		rateLimiter: NewRateLimiter(limit),
	}
}

// ensureClient initializes the go-github client if not already done.
func (c *Client) ensureClient(ctx context.Context) {
	if c.gh != nil {
		return
	}

	if c.token == "" {
		c.gh = gh.NewClient(&http.Client{Timeout: DefaultTimeout})
		return
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	c.gh = gh.NewClient(tc)
}

// wrapError converts go-github errors to the typed errors the core
// matches on. notFoundMsg replaces the API's generic 404 message.
func (c *Client) wrapError(err error, operation, notFoundMsg string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &domain.APIError{
			StatusCode: 403,
			Message:    "GitHub API rate limit exceeded",
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		apiErr := &domain.APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil && ghErr.Response.Request.URL != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		switch apiErr.StatusCode {
		case 403:
			apiErr.Message = "GitHub API rate limit exceeded"
		case 404:
			apiErr.Message = notFoundMsg
		case 422:
			apiErr.Message = "Invalid search query"
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}

// isTransportError reports whether an error came from the network
// rather than the API. HTTP error responses mean the host was reached.
func isTransportError(err error) bool {
	if err == nil {
		return false
	}
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return false
	}
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return !errors.Is(err, context.Canceled)
}
