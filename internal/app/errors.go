package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	var ire interface {
		IsInvalidRequest() bool
	}
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// UpstreamError is special error type returned when the github api responds
// with a non-success status or a payload without the expected user object.
type UpstreamError string

// Error implements error interface.
func (e UpstreamError) Error() string {
	return string(e)
}

// IsUpstream tells that this error is 'upstream'.
// Returns always true.
func (UpstreamError) IsUpstream() bool {
	return true
}

// IsUpstreamError checks if given error is caused by the upstream api.
func IsUpstreamError(err error) bool {
	var ue interface {
		IsUpstream() bool
	}
	if errors.As(err, &ue) {
		return ue.IsUpstream()
	}

	return false
}

// TooManyRequestsError is special error type returned when some request rate limit is exceeded.
type TooManyRequestsError string

// Error implements error interface.
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by exceeding requests limit.
func IsTooManyRequestsError(err error) bool {
	var tmr interface {
		IsTooManyRequests() bool
	}
	if errors.As(err, &tmr) {
		return tmr.IsTooManyRequests()
	}

	return false
}
