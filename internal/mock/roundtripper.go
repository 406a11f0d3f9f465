package mock

import "net/http"

// RoundTripper mocks http.RoundTripper. Counts trips, always responds with empty 200.
type RoundTripper struct {
	Trips int
}

// RoundTrip returns an empty successful response.
func (t *RoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	t.Trips++
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       http.NoBody,
	}, nil
}
