package youtube

import "strings"

// Segment is one timed caption unit. Start and Duration are in seconds.
type Segment struct {
	Text     string
	Start    float64
	Duration float64
}

// Assemble joins segment texts with a single space, in playback order.
// An empty sequence yields "".
func Assemble(segs []Segment) string {
	texts := make([]string, len(segs))
	for i, s := range segs {
		texts[i] = s.Text
	}
	return strings.Join(texts, " ")
}
