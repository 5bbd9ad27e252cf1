// Package apierr provides the error taxonomy shared by the summary pipeline
// and the sentinels used to classify upstream API failures.
//
// Provider adapters map HTTP status codes to the sentinels using
// fmt.Errorf("%s: %w", msg, sentinel). The pipeline then tags every failure
// with a Kind (client input, upstream dependency, internal) so the HTTP and
// CLI boundaries can pick a status code or exit code without string matching.
package apierr

import "errors"

// Sentinel errors for upstream API failures.
var (
	// ErrRateLimit indicates the API rate limit was exceeded.
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrQuotaExceeded indicates the API quota was exceeded (billing issue).
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrTimeout indicates a request timed out.
	ErrTimeout = errors.New("request timeout")

	// ErrAuthFailed indicates API authentication failed (invalid key).
	ErrAuthFailed = errors.New("authentication failed")

	// ErrBadRequest indicates a client error (4xx) that is not otherwise classified.
	ErrBadRequest = errors.New("bad request")
)
