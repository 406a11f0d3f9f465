package limiter

import (
	"fmt"
	"net/http"

	"github.com/mkrol/gitfolio/internal/app"
	"golang.org/x/time/rate"
)

// limitedRoundTripper wraps http.RoundTripper and allows round trips with maximum rate limit.
type limitedRoundTripper struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewRoundTripper creates rate limited http.RoundTripper.
// maxRate - maximum number of round trips per second.
func NewRoundTripper(base http.RoundTripper, maxRate float64) http.RoundTripper {
	return &limitedRoundTripper{
		base:    base,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

// RoundTrip executes http request. If limit is exceeded, blocks until call rate is within limit.
func (t *limitedRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		return nil, app.TooManyRequestsError(fmt.Sprintf("waiting for round trip limiter: %v", err))
	}

	return t.base.RoundTrip(r)
}
