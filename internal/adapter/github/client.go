package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkrol/gitfolio/internal/app"
	"github.com/shurcooL/githubv4"
)

// Client fetches user and repository data from the github graphql api.
// This struct is an adapter for app.GithubClient.
//go:generate mockgen -destination ../../app/mock/githubcli.go -package mock github.com/mkrol/gitfolio/internal/app GithubClient
type Client struct {
	gql *githubv4.Client
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// address is the graphql endpoint url, with protocol.
func NewClient(httpClient *http.Client, address string) *Client {
	return &Client{
		gql: githubv4.NewEnterpriseClient(address, httpClient),
	}
}

// ProfileStats fetches user's profile, repositories, pinned items and
// contribution counts in a single query and flattens them into a snapshot.
func (c *Client) ProfileStats(ctx context.Context, login string) (*app.StatsSnapshot, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}

	var q profileQuery
	variables := map[string]interface{}{
		"login": githubv4.String(login),
	}
	if err := c.gql.Query(ctx, &q, variables); err != nil {
		return nil, app.UpstreamError(fmt.Sprintf("querying user profile: %v", err))
	}
	if q.User.Login == "" {
		return nil, app.UpstreamError("no user in response: user not found or api misconfigured")
	}

	return q.User.toSnapshot(), nil
}

// RepoSummary fetches a single repository by owner and name.
func (c *Client) RepoSummary(ctx context.Context, owner string, name string) (*app.RepoSummary, error) {
	if owner == "" {
		return nil, app.InvalidRequestError("repository owner cannot be empty")
	}
	if name == "" {
		return nil, app.InvalidRequestError("repository name cannot be empty")
	}

	var q repositoryQuery
	variables := map[string]interface{}{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(name),
	}
	if err := c.gql.Query(ctx, &q, variables); err != nil {
		return nil, app.UpstreamError(fmt.Sprintf("querying repository %s/%s: %v", owner, name, err))
	}
	if q.Repository.Name == "" {
		return nil, app.UpstreamError(fmt.Sprintf("no repository %s/%s in response", owner, name))
	}

	summary := q.Repository.toSummary()

	return &summary, nil
}
