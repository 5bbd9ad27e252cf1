package summarize

import "errors"

var (
	// ErrEmptyAPIKey indicates that the API key was not provided.
	ErrEmptyAPIKey = errors.New("API key is required")

	// ErrEmptyResponse indicates the provider answered without any text.
	ErrEmptyResponse = errors.New("provider returned an empty summary")
)
