package imagery

import "errors"

var (
	// ErrBadStatus reports a non-2xx response from an imagery service.
	ErrBadStatus = errors.New("unexpected response status")

	// ErrRetryExhausted reports that every aerial fetch attempt failed.
	// The returned error wraps the individual attempt errors.
	ErrRetryExhausted = errors.New("aerial fetch attempts exhausted")
)
