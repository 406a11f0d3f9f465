package http

import (
	"context"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mkrol/gitfolio/internal/app"
	"github.com/sirupsen/logrus"
)

// Service provides github stats for http handlers.
type Service interface {
	ProfileStats(ctx context.Context, login string) (*app.StatsSnapshot, error)
	RepoSummaries(ctx context.Context, login string, names []string) ([]app.RepoSummary, error)
}

// statsCacheControl is sent with every successful stats response.
const statsCacheControl = "public, max-age=3600"

type repoSummary struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	Stars       int     `json:"stars"`
	Forks       int     `json:"forks"`
}

type languageStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type statsResponse struct {
	Name          string         `json:"name"`
	Login         string         `json:"login"`
	AvatarURL     string         `json:"avatarUrl"`
	Bio           string         `json:"bio"`
	Company       string         `json:"company"`
	Location      string         `json:"location"`
	WebsiteURL    string         `json:"websiteUrl"`
	Twitter       string         `json:"twitter"`
	Followers     int            `json:"followers"`
	Following     int            `json:"following"`
	PublicRepos   int            `json:"publicRepos"`
	TotalStars    int            `json:"totalStars"`
	TotalForks    int            `json:"totalForks"`
	Contributions int            `json:"contributions"`
	PullRequests  int            `json:"pullRequests"`
	Issues        int            `json:"issues"`
	Languages     []languageStat `json:"languages"`
	TopRepos      []repoSummary  `json:"topRepos"`
	Pinned        []repoSummary  `json:"pinned"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newStatsResponse(s *app.StatsSnapshot) statsResponse {
	languages := make([]languageStat, 0, len(s.Languages))
	for _, l := range s.Languages {
		languages = append(languages, languageStat{
			Name:  l.Name,
			Count: l.Count,
		})
	}

	return statsResponse{
		Name:          s.Profile.Name,
		Login:         s.Profile.Login,
		AvatarURL:     s.Profile.AvatarURL,
		Bio:           s.Profile.Bio,
		Company:       s.Profile.Company,
		Location:      s.Profile.Location,
		WebsiteURL:    s.Profile.WebsiteURL,
		Twitter:       s.Profile.Twitter,
		Followers:     s.Profile.Followers,
		Following:     s.Profile.Following,
		PublicRepos:   s.PublicRepos,
		TotalStars:    s.TotalStars,
		TotalForks:    s.TotalForks,
		Contributions: s.Contributions,
		PullRequests:  s.PullRequests,
		Issues:        s.Issues,
		Languages:     languages,
		TopRepos:      newRepoSummaries(s.TopRepos),
		Pinned:        newRepoSummaries(s.Pinned),
	}
}

func newRepoSummaries(summaries []app.RepoSummary) []repoSummary {
	rs := make([]repoSummary, 0, len(summaries))
	for _, s := range summaries {
		rs = append(rs, repoSummary{
			Name:        s.Name,
			Description: s.Description,
			URL:         s.URL,
			Stars:       s.Stars,
			Forks:       s.Forks,
		})
	}

	return rs
}

// NewStatsHandler creates handlerfunc returning user stats responses.
//
// Without the "repos" query param it responds with the full stats snapshot.
// With "repos" set to a comma separated list of names it responds with an
// array of summaries for those repositories only.
//go:generate mockgen -destination mock/service.go -package mock github.com/mkrol/gitfolio/internal/api/http Service
func NewStatsHandler(
	getLogin func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login := getLogin(r)

		if reposParam := r.URL.Query().Get("repos"); reposParam != "" {
			summaries, err := service.RepoSummaries(r.Context(), login, splitRepoNames(reposParam))
			if err != nil {
				writeError(w, l, err)
				return
			}
			writeJSON(w, newRepoSummaries(summaries))
			return
		}

		snapshot, err := service.ProfileStats(r.Context(), login)
		if err != nil {
			writeError(w, l, err)
			return
		}
		writeJSON(w, newStatsResponse(snapshot))
	}
}

func splitRepoNames(param string) []string {
	parts := strings.Split(param, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}

	return names
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", statsCacheControl)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, l logrus.FieldLogger, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case app.IsInvalidRequestError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case app.IsUpstreamError(err):
		l.Errorf("github upstream failure: %+v", err)
	default:
		l.Errorf("unexpected failure: %+v", err)
	}

	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(errorResponse{Error: message})
}
