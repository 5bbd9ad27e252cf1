package youtube_test

// Notes:
// - Accept/reject sets follow the recognised markers: youtu.be/, v/, /u/<x>/,
//   embed/ and watch?. Other shapes (shorts, live) are rejected on purpose.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/notegpt/internal/youtube"
)

const rickroll = "dQw4w9WgXcQ"

// ---------------------------------------------------------------------------
// TestParseVideoID_Valid - recognised markers yield the 11-character ID
// ---------------------------------------------------------------------------

func TestParseVideoID_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch URL without scheme", "youtube.com/watch?v=dQw4w9WgXcQ"},
		{"mobile watch URL", "https://m.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch URL with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL123"},
		{"watch URL with fragment", "https://www.youtube.com/watch?v=dQw4w9WgXcQ#t=30"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ"},
		{"short link with share param", "https://youtu.be/dQw4w9WgXcQ?si=abcdef"},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"embed URL with query", "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0"},
		{"legacy v URL", "https://www.youtube.com/v/dQw4w9WgXcQ?version=3"},
		{"user upload URL", "https://www.youtube.com/u/1/dQw4w9WgXcQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := youtube.ParseVideoID(tt.url)
			if err != nil {
				t.Fatalf("ParseVideoID(%q) unexpected error: %v", tt.url, err)
			}
			if id.String() != rickroll {
				t.Errorf("ParseVideoID(%q) = %q, want %q", tt.url, id.String(), rickroll)
			}
			if id.IsZero() {
				t.Errorf("ParseVideoID(%q).IsZero() = true, want false", tt.url)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseVideoID_Invalid - no marker or wrong length
// ---------------------------------------------------------------------------

func TestParseVideoID_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{"empty string", ""},
		{"not a url", "not a url"},
		{"bare id", rickroll},
		{"other host", "https://vimeo.com/123456789"},
		{"id too short", "https://www.youtube.com/watch?v=short"},
		{"id too long", "https://www.youtube.com/watch?v=dQw4w9WgXcQX"},
		{"id cut by delimiter", "https://youtu.be/dQw4w&t=1"},
		{"shorts URL", "https://www.youtube.com/shorts/dQw4w9WgXcQ"},
		{"channel page", "https://www.youtube.com/@rickastley"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := youtube.ParseVideoID(tt.url)
			if !errors.Is(err, youtube.ErrInvalidURL) {
				t.Errorf("ParseVideoID(%q) error = %v, want ErrInvalidURL", tt.url, err)
			}
			if !id.IsZero() {
				t.Errorf("ParseVideoID(%q) = %q on error, want zero", tt.url, id.String())
			}
		})
	}
}

// An 11-character token is accepted even if it is not a real video.
func TestParseVideoID_LengthIsTheOnlyCheck(t *testing.T) {
	t.Parallel()

	id, err := youtube.ParseVideoID("https://youtu.be/!!!!!!!!!!!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != "!!!!!!!!!!!" {
		t.Errorf("got %q", id.String())
	}
}

// Length counts characters, not bytes.
func TestParseVideoID_CountsCharacters(t *testing.T) {
	t.Parallel()

	id, err := youtube.ParseVideoID("https://youtu.be/ééééééééééé")
	if err != nil {
		t.Fatalf("11 two-byte characters rejected: %v", err)
	}
	if id.String() != "ééééééééééé" {
		t.Errorf("got %q", id.String())
	}

	_, err = youtube.ParseVideoID("https://youtu.be/éééééé")
	if err == nil || !strings.Contains(err.Error(), "is 6 characters") {
		t.Errorf("error = %v, want a 6-character count", err)
	}
}

func TestErrInvalidURL_Message(t *testing.T) {
	t.Parallel()

	if got, want := youtube.ErrInvalidURL.Error(), "Invalid YouTube URL"; got != want {
		t.Errorf("ErrInvalidURL = %q, want %q", got, want)
	}
}
