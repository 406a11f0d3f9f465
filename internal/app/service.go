package app

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// GithubClient returns github profile statistics and repository details.
type GithubClient interface {
	ProfileStats(ctx context.Context, login string) (*StatsSnapshot, error)
	RepoSummary(ctx context.Context, owner string, name string) (*RepoSummary, error)
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	githubClient GithubClient
	timeout      time.Duration
}

// NewService creates new Service instance.
func NewService(githubClient GithubClient, timeout time.Duration) *Service {
	return &Service{
		githubClient: githubClient,
		timeout:      timeout,
	}
}

// ProfileStats returns the full stats snapshot for given user login.
func (s *Service) ProfileStats(ctx context.Context, login string) (*StatsSnapshot, error) {
	if login == "" {
		return nil, InvalidRequestError("login cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.githubClient.ProfileStats(ctx, login)
}

// RepoSummaries returns summaries for explicitly named repositories owned by given user.
//
// Names may come in "owner/name" form and are normalized to bare names.
// Repositories are fetched concurrently and independently. A failed fetch
// excludes that repository from the result, it never fails the whole batch.
// Successful entries preserve the input order.
func (s *Service) RepoSummaries(ctx context.Context, login string, names []string) ([]RepoSummary, error) {
	if login == "" {
		return nil, InvalidRequestError("login cannot be empty")
	}
	if len(names) == 0 {
		return nil, InvalidRequestError("repository names cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	fetched := make([]*RepoSummary, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, normalizeRepoName(name)
		g.Go(func() error {
			summary, err := s.githubClient.RepoSummary(ctx, login, name)
			if err != nil {
				// Individual failures are swallowed, the repo is just skipped.
				return nil
			}
			fetched[i] = summary
			return nil
		})
	}
	_ = g.Wait()

	summaries := make([]RepoSummary, 0, len(names))
	for _, summary := range fetched {
		if summary != nil {
			summaries = append(summaries, *summary)
		}
	}

	return summaries, nil
}

// normalizeRepoName strips the "owner/" prefix from a repo identifier.
func normalizeRepoName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
