package youtube

// Exports for testing internal logic from the black-box youtube_test package.

// CaptionTrack is captionTrack, exported for pickTrack tests.
type CaptionTrack = captionTrack

var (
	PickTrack         = pickTrack
	ExtractJSONObject = extractJSONObject
	ParseTimedText    = parseTimedText
)

// ParsePlayerResponse reports only whether a player response was decoded.
func ParsePlayerResponse(page []byte) error {
	_, err := parsePlayerResponse(page)
	return err
}
