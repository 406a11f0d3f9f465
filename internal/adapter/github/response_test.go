package github

import (
	"testing"

	"github.com/mkrol/gitfolio/internal/app"
	"github.com/stretchr/testify/assert"
)

func Test_userNode_toSnapshot(t *testing.T) {
	descA := "repo a"

	newRepo := func(name string, desc *string, stars, forks int, languages ...string) repositoryNode {
		r := repositoryNode{
			Name:           name,
			Description:    desc,
			URL:            "https://github.com/tester/" + name,
			StargazerCount: stars,
			ForkCount:      forks,
		}
		for _, l := range languages {
			r.Languages.Nodes = append(r.Languages.Nodes, languageNode{Name: l})
		}
		return r
	}

	var u userNode
	u.Name = "Tester"
	u.Login = "tester"
	u.AvatarURL = "https://avatars.githubusercontent.com/u/1"
	u.Bio = "bio"
	u.Company = "acme"
	u.Location = "Warsaw"
	u.WebsiteURL = "https://tester.dev"
	u.TwitterUsername = "tester"
	u.Followers.TotalCount = 10
	u.Following.TotalCount = 5
	u.PullRequests.TotalCount = 7
	u.Issues.TotalCount = 3
	u.ContributionsCollection.ContributionCalendar.TotalContributions = 1234
	u.Repositories.TotalCount = 3
	u.Repositories.Nodes = []repositoryNode{
		newRepo("a", &descA, 5, 2, "Go", "Rust"),
		newRepo("b", nil, 3, 1, "Go"),
		newRepo("c", nil, 0, 0),
	}
	u.PinnedItems.Nodes = []pinnedItemNode{
		{Repository: newRepo("b", nil, 3, 1, "Go")},
	}

	got := u.toSnapshot()

	assert.Equal(t, app.Profile{
		Name:       "Tester",
		Login:      "tester",
		AvatarURL:  "https://avatars.githubusercontent.com/u/1",
		Bio:        "bio",
		Company:    "acme",
		Location:   "Warsaw",
		WebsiteURL: "https://tester.dev",
		Twitter:    "tester",
		Followers:  10,
		Following:  5,
	}, got.Profile)

	assert.Equal(t, 3, got.PublicRepos)
	assert.Equal(t, 8, got.TotalStars)
	assert.Equal(t, 3, got.TotalForks)
	assert.Equal(t, 1234, got.Contributions)
	assert.Equal(t, 7, got.PullRequests)
	assert.Equal(t, 3, got.Issues)

	assert.Equal(t, []app.LanguageStat{
		{Name: "Go", Count: 2},
		{Name: "Rust", Count: 1},
	}, got.Languages)

	assert.Equal(t, []app.RepoSummary{
		{Name: "a", Description: &descA, URL: "https://github.com/tester/a", Stars: 5, Forks: 2},
		{Name: "b", URL: "https://github.com/tester/b", Stars: 3, Forks: 1},
		{Name: "c", URL: "https://github.com/tester/c"},
	}, got.TopRepos)

	assert.Equal(t, []app.RepoSummary{
		{Name: "b", URL: "https://github.com/tester/b", Stars: 3, Forks: 1},
	}, got.Pinned)
}

func Test_userNode_toSnapshot_topReposLimit(t *testing.T) {
	var u userNode
	u.Login = "tester"
	for i := 0; i < topReposCount+3; i++ {
		u.Repositories.Nodes = append(u.Repositories.Nodes, repositoryNode{
			Name:           "repo",
			StargazerCount: 1,
		})
	}

	got := u.toSnapshot()

	assert.Len(t, got.TopRepos, topReposCount)
	assert.Equal(t, topReposCount+3, got.TotalStars)
}

func Test_sortedLanguageStats(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int
		want   []app.LanguageStat
	}{
		{
			name:   "empty",
			counts: map[string]int{},
			want:   []app.LanguageStat{},
		},
		{
			name: "sorted by count descending",
			counts: map[string]int{
				"Rust": 1,
				"Go":   2,
			},
			want: []app.LanguageStat{
				{Name: "Go", Count: 2},
				{Name: "Rust", Count: 1},
			},
		},
		{
			name: "ties ordered by name",
			counts: map[string]int{
				"TypeScript": 1,
				"Go":         1,
				"Rust":       1,
			},
			want: []app.LanguageStat{
				{Name: "Go", Count: 1},
				{Name: "Rust", Count: 1},
				{Name: "TypeScript", Count: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortedLanguageStats(tt.counts)
			assert.Equal(t, tt.want, got)
		})
	}
}
