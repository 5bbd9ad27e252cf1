// Package youtube extracts video IDs from URLs and fetches caption
// transcripts from youtube.com.
package youtube

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// videoIDLength is the fixed length of every YouTube video ID.
const videoIDLength = 11

// videoURLPattern recognises the marker before the ID: youtu.be/, v/,
// /u/<x>/, embed/ or watch?. Group 7 is everything after the marker
// (and an optional "?v=") up to the first '#', '&' or '?'.
var videoURLPattern = regexp.MustCompile(`^.*((youtu\.be/)|(v/)|(/u/\w/)|(embed/)|(watch\?))\??v?=?([^#&?]*).*`)

// VideoID is a validated 11-character YouTube video ID.
// Zero value is invalid; use ParseVideoID.
type VideoID struct {
	id string
}

// ParseVideoID extracts the video ID from a YouTube URL.
// Any span of exactly 11 characters after a recognised marker is accepted;
// a well-formed but nonexistent ID fails later, when its transcript is fetched.
// Returns an error wrapping ErrInvalidURL otherwise.
func ParseVideoID(raw string) (VideoID, error) {
	m := videoURLPattern.FindStringSubmatch(raw)
	if m == nil {
		return VideoID{}, fmt.Errorf("no video marker in %q: %w", raw, ErrInvalidURL)
	}
	id := m[7]
	if n := utf8.RuneCountInString(id); n != videoIDLength {
		return VideoID{}, fmt.Errorf("video id %q is %d characters, want %d: %w",
			id, n, videoIDLength, ErrInvalidURL)
	}
	return VideoID{id: id}, nil
}

// MustParseVideoID parses a URL, panicking if invalid.
// Use only for constants and tests.
func MustParseVideoID(raw string) VideoID {
	id, err := ParseVideoID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the bare ID.
func (v VideoID) String() string {
	return v.id
}

// IsZero reports whether v was not produced by ParseVideoID.
func (v VideoID) IsZero() bool {
	return v.id == ""
}
