package main

import (
	netHttp "net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/mkrol/gitfolio/internal/adapter/github"
	"github.com/mkrol/gitfolio/internal/api/http"
	"github.com/mkrol/gitfolio/internal/api/http/limiter"
	"github.com/mkrol/gitfolio/internal/app"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	if conf.GithubAPIToken == "" {
		l.Warn("github api token is not set, github queries will fail")
	}
	if conf.GithubLogin == "" {
		l.Warn("default github login is not set, requests without a login will be rejected")
	}

	transport := limiter.NewRoundTripper(
		netHttp.DefaultTransport,
		conf.GithubAPIRateLimit,
	)
	if conf.GithubAPIToken != "" {
		transport = &oauth2.Transport{
			Base: transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: conf.GithubAPIToken,
			}),
		}
	}
	httpClient := &netHttp.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}

	githubClient := github.NewClient(
		httpClient,
		conf.GithubGraphQLAddress,
	)
	githubCachedClient, err := github.NewCachedClient(
		githubClient,
		conf.SnapshotCacheSize,
		conf.SnapshotCacheTTL,
	)
	if err != nil {
		l.Fatalf("couldn't create github client cache: %v", err)
	}

	service := app.NewService(
		githubCachedClient,
		conf.ServiceResponseTimeout,
	)

	mux := http.NewMux(service, 60*time.Second, conf.GithubLogin, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	server.Run()
}
