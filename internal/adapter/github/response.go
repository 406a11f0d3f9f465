package github

import (
	"sort"

	"github.com/mkrol/gitfolio/internal/app"
)

// topReposCount limits the "top repositories" view in the snapshot.
const topReposCount = 5

type profileQuery struct {
	User userNode `graphql:"user(login: $login)"`
}

type userNode struct {
	Name            string
	Login           string
	AvatarURL       string `graphql:"avatarUrl"`
	Bio             string
	Company         string
	Location        string
	WebsiteURL      string `graphql:"websiteUrl"`
	TwitterUsername string

	Followers struct {
		TotalCount int
	}
	Following struct {
		TotalCount int
	}
	PullRequests struct {
		TotalCount int
	}
	Issues struct {
		TotalCount int
	}
	ContributionsCollection struct {
		ContributionCalendar struct {
			TotalContributions int
		}
	}

	Repositories struct {
		TotalCount int
		Nodes      []repositoryNode
	} `graphql:"repositories(first: 100, privacy: PUBLIC, ownerAffiliations: OWNER, orderBy: {field: STARGAZERS, direction: DESC})"`

	PinnedItems struct {
		Nodes []pinnedItemNode
	} `graphql:"pinnedItems(first: 6, types: REPOSITORY)"`
}

type pinnedItemNode struct {
	Repository repositoryNode `graphql:"... on Repository"`
}

type repositoryNode struct {
	Name           string
	Description    *string
	URL            string `graphql:"url"`
	StargazerCount int
	ForkCount      int
	Languages      struct {
		Nodes []languageNode
	} `graphql:"languages(first: 5, orderBy: {field: SIZE, direction: DESC})"`
}

type languageNode struct {
	Name string
}

type repositoryQuery struct {
	Repository repositorySummaryNode `graphql:"repository(owner: $owner, name: $name)"`
}

type repositorySummaryNode struct {
	Name           string
	Description    *string
	URL            string `graphql:"url"`
	StargazerCount int
	ForkCount      int
}

func (u userNode) toSnapshot() *app.StatsSnapshot {
	s := app.StatsSnapshot{
		Profile: app.Profile{
			Name:       u.Name,
			Login:      u.Login,
			AvatarURL:  u.AvatarURL,
			Bio:        u.Bio,
			Company:    u.Company,
			Location:   u.Location,
			WebsiteURL: u.WebsiteURL,
			Twitter:    u.TwitterUsername,
			Followers:  u.Followers.TotalCount,
			Following:  u.Following.TotalCount,
		},
		PublicRepos:   u.Repositories.TotalCount,
		Contributions: u.ContributionsCollection.ContributionCalendar.TotalContributions,
		PullRequests:  u.PullRequests.TotalCount,
		Issues:        u.Issues.TotalCount,
	}

	languageCounts := make(map[string]int)
	for _, r := range u.Repositories.Nodes {
		s.TotalStars += r.StargazerCount
		s.TotalForks += r.ForkCount
		// Each of repo's top languages is counted once per repository.
		for _, l := range r.Languages.Nodes {
			languageCounts[l.Name]++
		}
	}
	s.Languages = sortedLanguageStats(languageCounts)

	// Repositories come ordered by stars, so the top view is a plain slice.
	top := u.Repositories.Nodes
	if len(top) > topReposCount {
		top = top[:topReposCount]
	}
	s.TopRepos = make([]app.RepoSummary, 0, len(top))
	for _, r := range top {
		s.TopRepos = append(s.TopRepos, r.toSummary())
	}

	s.Pinned = make([]app.RepoSummary, 0, len(u.PinnedItems.Nodes))
	for _, n := range u.PinnedItems.Nodes {
		s.Pinned = append(s.Pinned, n.Repository.toSummary())
	}

	return &s
}

func (r repositoryNode) toSummary() app.RepoSummary {
	return app.RepoSummary{
		Name:        r.Name,
		Description: r.Description,
		URL:         r.URL,
		Stars:       r.StargazerCount,
		Forks:       r.ForkCount,
	}
}

func (r repositorySummaryNode) toSummary() app.RepoSummary {
	return app.RepoSummary{
		Name:        r.Name,
		Description: r.Description,
		URL:         r.URL,
		Stars:       r.StargazerCount,
		Forks:       r.ForkCount,
	}
}

func sortedLanguageStats(counts map[string]int) []app.LanguageStat {
	stats := make([]app.LanguageStat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, app.LanguageStat{
			Name:  name,
			Count: count,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})

	return stats
}
