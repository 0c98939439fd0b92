package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/octoview/octoview-cli/internal/core/domain"
	"github.com/octoview/octoview-cli/internal/core/ports/driven"
	"github.com/octoview/octoview-cli/internal/logger"
)

const (
	// MaxCachedUsers bounds the searched-user partition.
	MaxCachedUsers = 6

	// MaxCachedRepoDetails bounds the repository-details partition.
	MaxCachedRepoDetails = 20

	// userCacheKey is the blob key for the user partition.
	userCacheKey = "github_user_cache"

	// repoCacheKey is the blob key for the repository-details partition.
	repoCacheKey = "github_repo_details_cache"
)

// cachedUser wraps a snapshot with its cache timestamp.
type cachedUser struct {
	Data     domain.UserSnapshot `json:"data"`
	CachedAt time.Time           `json:"cachedAt"`
}

// userCacheBlob is the serialized user partition.
// Order holds normalized usernames, most recent first.
type userCacheBlob struct {
	Users map[string]cachedUser `json:"users"`
	Order []string              `json:"order"`
}

// cachedRepo wraps a detail payload with its cache timestamp.
type cachedRepo struct {
	Data     domain.RepositoryDetails `json:"data"`
	CachedAt time.Time                `json:"cachedAt"`
}

// repoCacheBlob is the serialized repository-details partition.
type repoCacheBlob struct {
	Repos map[string]cachedRepo `json:"repos"`
	Order []string              `json:"order"`
}

// Ensure SessionCache implements the interface.
var _ driven.SessionStore = (*SessionCache)(nil)

// SessionCache is the bounded, recency-ordered session store for
// searched users and repository detail pages. The two partitions share
// the eviction discipline but nothing else: independent blobs,
// capacities and recency orders.
//
// Every mutation rewrites the whole partition blob; a missing or
// corrupt blob reads as an empty partition.
type SessionCache struct {
	mu    sync.Mutex
	blobs driven.BlobStore
}

// NewSessionCache creates a session cache on top of a blob store.
func NewSessionCache(blobs driven.BlobStore) *SessionCache {
	return &SessionCache{blobs: blobs}
}

// PutUser inserts or refreshes a user snapshot. The key is promoted to
// the front of the recency order without duplication; when the
// partition exceeds capacity the least-recently cached entry is
// evicted. The payload is always overwritten and FetchedAt stamped.
func (c *SessionCache) PutUser(snapshot domain.UserSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := domain.NormalizeUsername(snapshot.Username)
	now := time.Now()
	snapshot.Username = key
	snapshot.FetchedAt = now

	blob := c.loadUsers()
	var evicted string
	blob.Order, evicted = promote(blob.Order, key, MaxCachedUsers)
	if evicted != "" {
		delete(blob.Users, evicted)
		logger.Debug("user cache evicted %s", evicted)
	}
	blob.Users[key] = cachedUser{Data: snapshot, CachedAt: now}

	c.saveUsers(blob)
}

// GetUser looks up a snapshot by case-insensitive username.
// A read does not promote the entry; only PutUser changes recency.
func (c *SessionCache) GetUser(username string) (domain.UserSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	blob := c.loadUsers()
	entry, ok := blob.Users[domain.NormalizeUsername(username)]
	if !ok {
		return domain.UserSnapshot{}, false
	}
	return entry.Data, true
}

// ListRecentUsers returns cached snapshots, most recently cached first.
// Keys with no resolvable payload are skipped.
func (c *SessionCache) ListRecentUsers() []domain.UserSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	blob := c.loadUsers()
	out := make([]domain.UserSnapshot, 0, len(blob.Order))
	for _, key := range blob.Order {
		entry, ok := blob.Users[key]
		if !ok {
			continue
		}
		out = append(out, entry.Data)
	}
	return out
}

// UpdateUserRepositories replaces the repositories and has-more flag of
// an existing entry, refreshing FetchedAt. It never creates an entry
// and never alters the recency order.
func (c *SessionCache) UpdateUserRepositories(username string, repos []domain.Repository, hasMore bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := domain.NormalizeUsername(username)
	blob := c.loadUsers()
	entry, ok := blob.Users[key]
	if !ok {
		return
	}

	entry.Data.Repositories = repos
	entry.Data.HasMoreRepositories = hasMore
	entry.Data.FetchedAt = time.Now()
	blob.Users[key] = entry

	c.saveUsers(blob)
}

// ClearUsers drops the whole user partition.
func (c *SessionCache) ClearUsers() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.blobs.Delete(userCacheKey); err != nil {
		logger.Warn("clear user cache: %v", err)
	}
}

// PutRepoDetails inserts or refreshes a detail payload under the
// case-insensitive "owner/repo" key, with the same eviction discipline
// as the user partition but an independent capacity and order.
func (c *SessionCache) PutRepoDetails(owner, repo string, details domain.RepositoryDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := domain.RepoKey(owner, repo)
	blob := c.loadRepos()
	var evicted string
	blob.Order, evicted = promote(blob.Order, key, MaxCachedRepoDetails)
	if evicted != "" {
		delete(blob.Repos, evicted)
		logger.Debug("repo cache evicted %s", evicted)
	}
	blob.Repos[key] = cachedRepo{Data: details, CachedAt: time.Now()}

	c.saveRepos(blob)
}

// GetRepoDetails looks up a detail payload by owner and repo name.
func (c *SessionCache) GetRepoDetails(owner, repo string) (domain.RepositoryDetails, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	blob := c.loadRepos()
	entry, ok := blob.Repos[domain.RepoKey(owner, repo)]
	if !ok {
		return domain.RepositoryDetails{}, false
	}
	return entry.Data, true
}

// promote moves key to the front of order, removing any previous
// occurrence. When the order grows past capacity the tail key is
// dropped and returned for deletion.
func promote(order []string, key string, capacity int) (newOrder []string, evicted string) {
	newOrder = make([]string, 0, len(order)+1)
	newOrder = append(newOrder, key)
	for _, k := range order {
		if k != key {
			newOrder = append(newOrder, k)
		}
	}
	if len(newOrder) > capacity {
		evicted = newOrder[len(newOrder)-1]
		newOrder = newOrder[:len(newOrder)-1]
	}
	return newOrder, evicted
}

// loadUsers reads the user partition, treating any unreadable blob as
// an empty cache.
func (c *SessionCache) loadUsers() userCacheBlob {
	blob := userCacheBlob{}
	if raw, ok := c.blobs.Get(userCacheKey); ok {
		if err := json.Unmarshal(raw, &blob); err != nil {
			logger.Warn("user cache corrupt, resetting: %v", err)
			blob = userCacheBlob{}
		}
	}
	if blob.Users == nil {
		blob.Users = make(map[string]cachedUser)
	}
	return blob
}

func (c *SessionCache) saveUsers(blob userCacheBlob) {
	raw, err := json.Marshal(blob)
	if err != nil {
		logger.Warn("serialize user cache: %v", err)
		return
	}
	if err := c.blobs.Set(userCacheKey, raw); err != nil {
		logger.Warn("persist user cache: %v", err)
	}
}

// loadRepos reads the repository-details partition, treating any
// unreadable blob as an empty cache.
func (c *SessionCache) loadRepos() repoCacheBlob {
	blob := repoCacheBlob{}
	if raw, ok := c.blobs.Get(repoCacheKey); ok {
		if err := json.Unmarshal(raw, &blob); err != nil {
			logger.Warn("repo cache corrupt, resetting: %v", err)
			blob = repoCacheBlob{}
		}
	}
	if blob.Repos == nil {
		blob.Repos = make(map[string]cachedRepo)
	}
	return blob
}

func (c *SessionCache) saveRepos(blob repoCacheBlob) {
	raw, err := json.Marshal(blob)
	if err != nil {
		logger.Warn("serialize repo cache: %v", err)
		return
	}
	if err := c.blobs.Set(repoCacheKey, raw); err != nil {
		logger.Warn("persist repo cache: %v", err)
	}
}
