package app

// Profile holds github user profile fields.
type Profile struct {
	Name       string
	Login      string
	AvatarURL  string
	Bio        string
	Company    string
	Location   string
	WebsiteURL string
	Twitter    string
	Followers  int
	Following  int
}

// RepoSummary is a flat projection of a github repository.
type RepoSummary struct {
	Name        string
	Description *string
	URL         string
	Stars       int
	Forks       int
}

// LanguageStat is a single entry of the language histogram.
type LanguageStat struct {
	Name  string
	Count int
}

// StatsSnapshot is the flattened representation of a user's github statistics.
// It is rebuilt wholesale on every cache miss and never updated partially.
type StatsSnapshot struct {
	Profile Profile

	PublicRepos   int
	TotalStars    int
	TotalForks    int
	Contributions int
	PullRequests  int
	Issues        int

	// Languages is sorted by count, descending.
	Languages []LanguageStat

	// TopRepos holds up to 5 repositories with most stars.
	TopRepos []RepoSummary

	// Pinned holds repositories pinned on the user's profile.
	Pinned []RepoSummary
}
