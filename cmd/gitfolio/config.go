package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// ServiceResponseTimeout - timeout for service execution
	ServiceResponseTimeout time.Duration `default:"30s"`

	// GithubGraphQLAddress - address for the github graphql api with protocol
	GithubGraphQLAddress string `default:"https://api.github.com/graphql"`

	// GithubAPIToken - bearer token for the github graphql api (required for any real query, missing value only logs a warning)
	GithubAPIToken string `default:""`

	// GithubLogin - default github login used when a request doesn't name one
	GithubLogin string `default:""`

	// GithubAPIRateLimit - max frequency for github api calls
	GithubAPIRateLimit float64 `default:"5"`

	// SnapshotCacheSize - maximum number of stats snapshots kept in cache
	SnapshotCacheSize int `default:"1000"`

	// SnapshotCacheTTL - maximum lifetime for cached stats snapshots
	SnapshotCacheTTL time.Duration `default:"1h"`
}
