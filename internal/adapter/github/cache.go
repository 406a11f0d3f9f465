package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/mkrol/gitfolio/internal/app"
)

// CachedClient wraps github client with a snapshot caching layer.
//
// Snapshots are cached per login with a fixed ttl. Only fully assembled
// snapshots are stored, failed fetches leave the cache untouched.
// RepoSummary calls pass through uncached.
type CachedClient struct {
	client    app.GithubClient
	snapshots *lru.Cache
	ttl       time.Duration
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	snapshots, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for snapshots: %w", err)
	}

	return &CachedClient{
		client:    client,
		snapshots: snapshots,
		ttl:       ttl,
	}, nil
}

// ProfileStats returns user's stats snapshot.
// A non-expired cached snapshot is returned without any network call.
func (c *CachedClient) ProfileStats(ctx context.Context, login string) (*app.StatsSnapshot, error) {
	val, ok := c.snapshots.Get(login)
	if ok {
		entry := val.(snapshotCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	snapshot, err := c.client.ProfileStats(ctx, login)
	if err != nil {
		return nil, err
	}

	entry := snapshotCacheEntry{
		created: time.Now(),
		data:    snapshot,
	}
	c.snapshots.Add(login, entry)

	return snapshot, nil
}

// RepoSummary returns a single repository summary, always delegating to the
// wrapped client. Batch responses are cached on the http layer only.
func (c *CachedClient) RepoSummary(ctx context.Context, owner string, name string) (*app.RepoSummary, error) {
	return c.client.RepoSummary(ctx, owner, name)
}

type snapshotCacheEntry struct {
	created time.Time
	data    *app.StatsSnapshot
}
