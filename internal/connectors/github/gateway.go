package github

import (
	"context"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/octoview/octoview-cli/internal/core/domain"
	"github.com/octoview/octoview-cli/internal/core/ports/driven"
	"github.com/octoview/octoview-cli/internal/logger"
)

// StatusRecorder receives the outcome of every API call. The network
// monitor implements it; a nil recorder disables reporting.
type StatusRecorder interface {
	RecordSuccess()
	RecordFailure()
}

// Ensure Gateway implements the interface.
var _ driven.Gateway = (*Gateway)(nil)

// Gateway implements the read operations the core needs on top of the
// GitHub REST API.
type Gateway struct {
	client *Client
	status StatusRecorder
}

// NewGateway creates a gateway. status may be nil.
func NewGateway(client *Client, status StatusRecorder) *Gateway {
	return &Gateway{client: client, status: status}
}

// SearchUsers returns one page of user-search suggestions.
func (g *Gateway) SearchUsers(ctx context.Context, query string, perPage int) (*domain.UserSearchResult, error) {
	g.client.ensureClient(ctx)
	if err := g.client.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.SearchOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
	result, resp, err := g.client.gh.Search.Users(ctx, query, opts)
	g.observe(resp, err)
	if err != nil {
		return nil, g.client.wrapError(err, "search users", "No users found")
	}

	out := &domain.UserSearchResult{
		TotalCount: result.GetTotal(),
		Query:      query,
		FetchedAt:  time.Now(),
		Users:      make([]domain.UserSearchItem, 0, len(result.Users)),
	}
	for _, u := range result.Users {
		out.Users = append(out.Users, domain.UserSearchItem{
			ID:        u.GetID(),
			Login:     u.GetLogin(),
			AvatarURL: u.GetAvatarURL(),
			URL:       u.GetHTMLURL(),
			Type:      u.GetType(),
		})
	}
	logger.Debug("search %q returned %d of %d users", query, len(out.Users), out.TotalCount)
	return out, nil
}

// FetchUserDetails returns the bio fields for a single user.
func (g *Gateway) FetchUserDetails(ctx context.Context, username string) (*domain.UserProfile, error) {
	g.client.ensureClient(ctx)
	if err := g.client.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	user, resp, err := g.client.gh.Users.Get(ctx, username)
	g.observe(resp, err)
	if err != nil {
		return nil, g.client.wrapError(err, "fetch user", fmt.Sprintf("User %q not found", username))
	}

	return &domain.UserProfile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		Bio:         user.GetBio(),
		Location:    user.GetLocation(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		PublicRepos: user.GetPublicRepos(),
		ProfileURL:  user.GetHTMLURL(),
	}, nil
}

// FetchRepositories returns one page of a user's repositories. HasMore
// is a heuristic: a page that came back exactly full is assumed to have
// a successor. A user whose repository count is a multiple of the page
// size costs one extra empty fetch.
func (g *Gateway) FetchRepositories(ctx context.Context, username string, req domain.RepoPageRequest) (*domain.RepoPage, error) {
	g.client.ensureClient(ctx)
	if err := g.client.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	sortField, direction := req.Sort.APISort()
	opts := &gh.RepositoryListByUserOptions{
		Sort:      sortField,
		Direction: direction,
		ListOptions: gh.ListOptions{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
	}
	repos, resp, err := g.client.gh.Repositories.ListByUser(ctx, username, opts)
	g.observe(resp, err)
	if err != nil {
		return nil, g.client.wrapError(err, "list repositories", fmt.Sprintf("User %q not found", username))
	}

	page := &domain.RepoPage{
		Repositories: make([]domain.Repository, 0, len(repos)),
		HasMore:      len(repos) == req.PerPage,
	}
	for _, r := range repos {
		page.Repositories = append(page.Repositories, mapRepository(r))
	}
	logger.Debug("page %d for %s: %d repositories, hasMore=%t",
		req.Page, username, len(page.Repositories), page.HasMore)
	return page, nil
}

// FetchRepositoryDetails returns the full detail payload for one repository.
func (g *Gateway) FetchRepositoryDetails(ctx context.Context, owner, repo string) (*domain.RepositoryDetails, error) {
	g.client.ensureClient(ctx)
	if err := g.client.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	r, resp, err := g.client.gh.Repositories.Get(ctx, owner, repo)
	g.observe(resp, err)
	if err != nil {
		return nil, g.client.wrapError(err, "fetch repository",
			fmt.Sprintf("Repository %q not found", owner+"/"+repo))
	}

	return &domain.RepositoryDetails{
		Repository:     mapRepository(r),
		FullName:       r.GetFullName(),
		OwnerAvatarURL: r.GetOwner().GetAvatarURL(),
		Forks:          r.GetForksCount(),
		Watchers:       r.GetWatchersCount(),
		DefaultBranch:  r.GetDefaultBranch(),
		CreatedAt:      r.GetCreatedAt().Time,
		Topics:         r.Topics,
		Homepage:       r.GetHomepage(),
	}, nil
}

// observe feeds the rate limiter and the network monitor from one call.
func (g *Gateway) observe(resp *gh.Response, err error) {
	if resp != nil {
		g.client.rateLimiter.UpdateFromResponse(resp.Response)
	}
	if g.status == nil {
		return
	}
	if isTransportError(err) {
		g.status.RecordFailure()
		return
	}
	g.status.RecordSuccess()
}

func mapRepository(r *gh.Repository) domain.Repository {
	return domain.Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
		URL:         r.GetHTMLURL(),
		Language:    r.GetLanguage(),
		UpdatedAt:   r.GetUpdatedAt().Time,
		OwnerLogin:  r.GetOwner().GetLogin(),
	}
}
