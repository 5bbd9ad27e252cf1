package youtube

import "errors"

var (
	// ErrInvalidURL indicates no video ID could be extracted from the input.
	// Its text is shown to callers as-is.
	ErrInvalidURL = errors.New("Invalid YouTube URL") //nolint:staticcheck // user-facing message

	// ErrVideoUnavailable indicates the video is private, removed, or region-locked.
	ErrVideoUnavailable = errors.New("video is unavailable")

	// ErrTranscriptsDisabled indicates the video has no caption tracks.
	ErrTranscriptsDisabled = errors.New("transcripts are disabled on this video")

	// ErrNoTranscript indicates a caption track was found but held no text.
	ErrNoTranscript = errors.New("no transcript available")

	// ErrUnexpectedPage indicates the watch page did not carry a player response.
	ErrUnexpectedPage = errors.New("unexpected watch page layout")
)
