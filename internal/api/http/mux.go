package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// NewMux creates router for app's http server.
//
// The stats route accepts a login as the path suffix. An empty suffix falls
// back to the configured default login.
func NewMux(service Service, timeout time.Duration, defaultLogin string, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	statsPath := "/api/stats/"
	statsHandler := NewStatsHandler(
		func(r *http.Request) string {
			login := strings.TrimPrefix(r.URL.Path, statsPath)
			if login == "" {
				login = defaultLogin
			}
			return login
		},
		service,
		l,
	)
	statsHandler = timeoutMiddleware(statsHandler)

	m := http.NewServeMux()
	m.HandleFunc(statsPath, statsHandler)

	return m
}
